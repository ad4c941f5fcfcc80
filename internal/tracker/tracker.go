package tracker

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/games"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/subscriptions"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/logging"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/metrics"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/notify"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/providers"
)

// DefaultLogoBaseURL hosts the league's team logos.
const DefaultLogoBaseURL = "https://assets.nhle.com/logos/nhl/svg"

// SubscriberLookup resolves the subscribers following a team.
type SubscriberLookup interface {
	SubscribersForTeam(team string) []subscriptions.Subscription
}

type record struct {
	teams      map[string]struct{}
	knownGoals map[games.EventKey]struct{}
	roster     map[int64]games.RosterEntry
	phase      games.Phase
}

func newRecord() *record {
	return &record{
		teams:      make(map[string]struct{}),
		knownGoals: make(map[games.EventKey]struct{}),
		roster:     make(map[int64]games.RosterEntry),
		phase:      games.PhaseIdle,
	}
}

// Tracker keeps per-game state across poll cycles and turns new scoring
// plays into notifications, at most once per event.
//
// One mutex guards the record map and every record. Feed fetches and
// notification delivery run outside it; event keys are claimed under it.
type Tracker struct {
	mu      sync.Mutex
	records map[int64]*record

	source      providers.FeedProvider
	subs        SubscriberLookup
	sender      notify.Sender
	logger      *slog.Logger
	metrics     *metrics.Recorder
	logoBaseURL string
}

// Option customises a Tracker.
type Option func(*Tracker)

// WithLogoBaseURL overrides where team logos are served from.
func WithLogoBaseURL(base string) Option {
	return func(t *Tracker) {
		if base != "" {
			t.logoBaseURL = base
		}
	}
}

// New constructs a Tracker with no tracked games.
func New(source providers.FeedProvider, subs SubscriberLookup, sender notify.Sender, logger *slog.Logger, recorder *metrics.Recorder, opts ...Option) *Tracker {
	t := &Tracker{
		records:     make(map[int64]*record),
		source:      source,
		subs:        subs,
		sender:      sender,
		logger:      logger,
		metrics:     recorder,
		logoBaseURL: DefaultLogoBaseURL,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// pendingGoal is a claimed play waiting for delivery.
type pendingGoal struct {
	team         string
	notification notify.Notification
	eventID      int64
}

// Process polls one game and reports the phase the scheduler should react to.
//
// teams is unioned into the game's interest set. When catchUp is set and this
// call created the record, every existing goal is marked known without
// notifying. A fetch failure reports PhaseLive and leaves state untouched.
func (t *Tracker) Process(ctx context.Context, gameID int64, teams []string, catchUp bool) games.Phase {
	log := logging.ForGame(t.logger, gameID)
	rec, created := t.ensureRecord(gameID, teams)

	feed, err := t.source.GameFeed(ctx, gameID)
	if err != nil {
		logging.Warn(log, "game feed fetch failed", "error", err)
		return games.PhaseLive
	}
	phase := feed.Phase()

	t.mu.Lock()
	rec.phase = phase
	if phase == games.PhasePreGame {
		t.mu.Unlock()
		return games.PhasePreGame
	}
	for _, entry := range feed.Roster {
		rec.roster[entry.PlayerID] = entry
	}

	if catchUp && created {
		for _, play := range feed.ScoringPlays {
			rec.knownGoals[games.NewEventKey(gameID, play)] = struct{}{}
		}
		t.finishLocked(gameID, rec, phase)
		t.mu.Unlock()
		logging.Info(log, "caught up on existing goals", logging.FieldCount, len(feed.ScoringPlays), logging.FieldPhase, phase)
		return phase
	}

	pending := t.claimLocked(gameID, rec, feed)
	finished := t.finishLocked(gameID, rec, phase)
	t.mu.Unlock()

	for _, goal := range pending {
		t.dispatch(ctx, log, goal)
	}

	if finished {
		logging.Info(log, "game finished, tracking stopped")
		return games.PhasePostGame
	}
	if feed.InIntermission {
		return games.PhaseIntermission
	}
	return phase
}

func (t *Tracker) ensureRecord(gameID int64, teams []string) (*record, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.records[gameID]
	if !ok {
		rec = newRecord()
		t.records[gameID] = rec
		t.metrics.AdjustTrackedGames(1)
	}
	for _, team := range teams {
		rec.teams[team] = struct{}{}
	}
	return rec, !ok
}

// claimLocked marks unseen plays known and returns the ones someone wants to hear about.
func (t *Tracker) claimLocked(gameID int64, rec *record, feed games.Feed) []pendingGoal {
	var pending []pendingGoal
	for _, play := range feed.ScoringPlays {
		key := games.NewEventKey(gameID, play)
		if _, seen := rec.knownGoals[key]; seen {
			continue
		}
		rec.knownGoals[key] = struct{}{}

		team, ok := feed.TeamAbbrevFor(play.ScoringTeamID)
		if !ok {
			logging.Debug(t.logger, "goal has no matching team", logging.FieldGameID, gameID, logging.FieldEventID, play.EventID)
			continue
		}
		if _, interested := rec.teams[team]; !interested {
			continue
		}
		t.metrics.RecordGoalDetected(team)

		pending = append(pending, pendingGoal{
			team:    team,
			eventID: play.EventID,
			notification: buildGoalNotification(goalContext{
				play:        play,
				feed:        feed,
				scoringTeam: team,
				roster:      rec.roster,
				logoBaseURL: t.logoBaseURL,
			}),
		})
	}
	return pending
}

// finishLocked drops the record once the game is over. It only removes the
// record it was handed, so a concurrent restart of the same id survives.
func (t *Tracker) finishLocked(gameID int64, rec *record, phase games.Phase) bool {
	if phase != games.PhasePostGame {
		return false
	}
	if current, ok := t.records[gameID]; ok && current == rec {
		delete(t.records, gameID)
		t.metrics.AdjustTrackedGames(-1)
	}
	return true
}

func (t *Tracker) dispatch(ctx context.Context, log *slog.Logger, goal pendingGoal) {
	subs := t.subs.SubscribersForTeam(goal.team)
	if len(subs) == 0 {
		return
	}
	logging.Info(log, "goal detected",
		logging.FieldTeam, goal.team,
		logging.FieldEventID, goal.eventID,
		"title", goal.notification.Title,
		logging.FieldCount, len(subs),
	)
	for _, sub := range subs {
		err := t.sender.Send(ctx, sub.Topic, goal.notification)
		t.metrics.RecordNotification(goal.team, err)
		if err != nil {
			logging.Error(log, "goal notification failed", err, logging.FieldTopic, sub.Topic, logging.FieldTeam, goal.team)
			continue
		}
		logging.Debug(log, "goal notification sent", logging.FieldTopic, sub.Topic)
	}
}

// GameState is a read-only view of one tracked game.
type GameState struct {
	GameID     int64       `json:"gameId"`
	Teams      []string    `json:"teams"`
	Phase      games.Phase `json:"phase"`
	KnownGoals int         `json:"knownGoals"`
}

// Games returns the tracked games ordered by id.
func (t *Tracker) Games() []GameState {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]GameState, 0, len(t.records))
	for id, rec := range t.records {
		teams := make([]string, 0, len(rec.teams))
		for team := range rec.teams {
			teams = append(teams, team)
		}
		sort.Strings(teams)
		out = append(out, GameState{GameID: id, Teams: teams, Phase: rec.phase, KnownGoals: len(rec.knownGoals)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GameID < out[j].GameID })
	return out
}

// Count returns the number of tracked games.
func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}
