package poller

import (
	"context"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/games"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/logging"
)

// NotifyNewSubscription starts a catch-up for team in the background.
func (p *Poller) NotifyNewSubscription(team string) {
	go p.CatchUp(p.loopContext(), team)
}

// CatchUp seeds today's unfinished games for team so goals scored before the
// subscription are not replayed, then pulls the next poll forward. It reports
// how many games were seeded.
func (p *Poller) CatchUp(ctx context.Context, team string) int {
	list, err := p.schedule.TodaysGames(ctx, team)
	if err != nil {
		logging.Warn(p.logger, "catch-up schedule fetch failed", logging.FieldTeam, team, "error", err)
		return 0
	}

	seeded := 0
	for _, game := range list {
		switch game.Phase() {
		case games.PhasePreGame, games.PhaseLive:
		default:
			continue
		}
		if ctx.Err() != nil {
			break
		}
		p.tracker.Process(ctx, game.ID, []string{team}, true)
		seeded++
	}

	if seeded > 0 {
		logging.Info(p.logger, "caught up new subscription",
			logging.FieldTeam, team,
			logging.FieldCount, seeded,
			logging.FieldDelayMS, p.intervals.CatchUp.Milliseconds(),
		)
		p.arm(p.intervals.CatchUp)
	}
	return seeded
}
