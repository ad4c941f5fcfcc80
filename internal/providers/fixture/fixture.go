package fixture

import (
	"context"
	"sync"
	"time"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/games"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/timeutil"
)

const (
	// LiveGameID is a scripted TOR vs BOS game that scores as it is polled.
	LiveGameID int64 = 2024029001
	// PreGameID is an EDM vs CGY game that never starts.
	PreGameID int64 = 2024029002

	defaultRevealEvery = 2
)

var script = []games.ScoringPlay{
	goal(101, 10, 8478483, 1, 0, 1, "04:12", 8479318),
	goal(145, 6, 8475166, 1, 1, 1, "17:40"),
	goal(212, 10, 8477939, 2, 1, 2, "08:03", 8478483, 8479318),
}

var roster = []games.RosterEntry{
	{PlayerID: 8478483, FirstName: "Mitch", LastName: "Marner", SweaterNumber: 16, TeamID: 10},
	{PlayerID: 8479318, FirstName: "Auston", LastName: "Matthews", SweaterNumber: 34, TeamID: 10},
	{PlayerID: 8477939, FirstName: "William", LastName: "Nylander", SweaterNumber: 88, TeamID: 10},
	{PlayerID: 8475166, FirstName: "David", LastName: "Pastrnak", SweaterNumber: 88, TeamID: 6},
}

// Provider is an offline game source. The live game reveals one scripted
// goal every few feed requests and ends once the script is exhausted.
type Provider struct {
	mu          sync.Mutex
	now         func() time.Time
	loc         *time.Location
	feedCalls   int
	revealEvery int
}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{
		now:         time.Now,
		loc:         time.UTC,
		revealEvery: defaultRevealEvery,
	}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string { return "fixture" }

// TodaysGames returns the scripted games the team plays in.
func (p *Provider) TodaysGames(ctx context.Context, team string) ([]games.ScheduledGame, error) {
	p.mu.Lock()
	liveState := p.liveStateLocked()
	today := timeutil.LocalDate(p.now(), p.loc)
	p.mu.Unlock()

	all := []games.ScheduledGame{
		{ID: LiveGameID, LifecycleCode: liveState, GameDate: today, HomeTeam: "TOR", AwayTeam: "BOS"},
		{ID: PreGameID, LifecycleCode: "FUT", GameDate: today, HomeTeam: "EDM", AwayTeam: "CGY"},
	}
	var out []games.ScheduledGame
	for _, g := range all {
		if g.HomeTeam == team || g.AwayTeam == team {
			out = append(out, g)
		}
	}
	return out, nil
}

// GameFeed returns the next scripted snapshot for gameID.
func (p *Provider) GameFeed(ctx context.Context, gameID int64) (games.Feed, error) {
	switch gameID {
	case LiveGameID:
		p.mu.Lock()
		defer p.mu.Unlock()
		p.feedCalls++
		revealed := min(p.feedCalls/p.revealEvery, len(script))
		return games.Feed{
			GameID:         gameID,
			LifecycleCode:  p.liveStateLocked(),
			HomeTeam:       games.FeedTeam{ID: 10, Abbrev: "TOR"},
			AwayTeam:       games.FeedTeam{ID: 6, Abbrev: "BOS"},
			Roster:         append([]games.RosterEntry(nil), roster...),
			ScoringPlays:   append([]games.ScoringPlay(nil), script[:revealed]...),
			InIntermission: p.feedCalls%(p.revealEvery*3) == 0,
		}, nil
	case PreGameID:
		return games.Feed{
			GameID:        gameID,
			LifecycleCode: "FUT",
			HomeTeam:      games.FeedTeam{ID: 22, Abbrev: "EDM"},
			AwayTeam:      games.FeedTeam{ID: 20, Abbrev: "CGY"},
		}, nil
	default:
		return games.Feed{GameID: gameID}, nil
	}
}

func (p *Provider) liveStateLocked() string {
	if p.feedCalls >= (len(script)+1)*p.revealEvery {
		return "OFF"
	}
	return "LIVE"
}

func goal(eventID int64, teamID int, scorer int64, home, away, period int, clock string, assists ...int64) games.ScoringPlay {
	return games.ScoringPlay{
		EventID:         eventID,
		ScoringTeamID:   teamID,
		ScoringPlayerID: scorer,
		AssistPlayerIDs: assists,
		HomeScore:       &home,
		AwayScore:       &away,
		PeriodNumber:    period,
		PeriodType:      "REG",
		TimeInPeriod:    clock,
	}
}
