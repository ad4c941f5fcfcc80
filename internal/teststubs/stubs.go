package teststubs

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/games"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/subscriptions"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/notify"
)

// StubSource is a test double for providers.GameSource with per-team
// schedules and per-game feeds.
type StubSource struct {
	mu         sync.Mutex
	schedules  map[string][]games.ScheduledGame
	feeds      map[int64]games.Feed
	scheduleEr map[string]error
	feedErr    map[int64]error

	// BeforeFeed, when set, runs before a feed is returned. Tests use it to
	// hold a call open.
	BeforeFeed func(gameID int64)
	PingErr    error

	ScheduleCalls atomic.Int32
	FeedCalls     atomic.Int32
}

func (s *StubSource) SetSchedule(team string, g ...games.ScheduledGame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.schedules == nil {
		s.schedules = make(map[string][]games.ScheduledGame)
	}
	s.schedules[team] = g
}

func (s *StubSource) SetScheduleError(team string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scheduleEr == nil {
		s.scheduleEr = make(map[string]error)
	}
	s.scheduleEr[team] = err
}

func (s *StubSource) SetFeed(feed games.Feed) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.feeds == nil {
		s.feeds = make(map[int64]games.Feed)
	}
	s.feeds[feed.GameID] = feed
}

func (s *StubSource) SetFeedError(gameID int64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.feedErr == nil {
		s.feedErr = make(map[int64]error)
	}
	s.feedErr[gameID] = err
}

// TodaysGames returns the configured schedule for team.
func (s *StubSource) TodaysGames(ctx context.Context, team string) ([]games.ScheduledGame, error) {
	s.ScheduleCalls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.scheduleEr[team]; err != nil {
		return nil, err
	}
	return append([]games.ScheduledGame(nil), s.schedules[team]...), nil
}

// GameFeed returns the configured feed, or an empty feed in IDLE state.
func (s *StubSource) GameFeed(ctx context.Context, gameID int64) (games.Feed, error) {
	s.FeedCalls.Add(1)
	if s.BeforeFeed != nil {
		s.BeforeFeed(gameID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.feedErr[gameID]; err != nil {
		return games.Feed{}, err
	}
	feed, ok := s.feeds[gameID]
	if !ok {
		return games.Feed{GameID: gameID}, nil
	}
	return feed, nil
}

func (s *StubSource) Ping(ctx context.Context) error {
	return s.PingErr
}

// SentNotification is one captured delivery.
type SentNotification struct {
	Topic        string
	Notification notify.Notification
}

// StubSender captures notifications and can fail chosen topics.
type StubSender struct {
	mu      sync.Mutex
	sent    []SentNotification
	failing map[string]error
}

func (s *StubSender) FailTopic(topic string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing == nil {
		s.failing = make(map[string]error)
	}
	s.failing[topic] = err
}

func (s *StubSender) Send(ctx context.Context, topic string, n notify.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failing[topic]; err != nil {
		return err
	}
	s.sent = append(s.sent, SentNotification{Topic: topic, Notification: n})
	return nil
}

// Sent returns a copy of every successful delivery in order.
func (s *StubSender) Sent() []SentNotification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SentNotification(nil), s.sent...)
}

// Count returns the number of successful deliveries.
func (s *StubSender) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

// StubSubscribers is a fixed subscriber list satisfying the tracker and
// poller lookups.
type StubSubscribers struct {
	mu   sync.Mutex
	subs []subscriptions.Subscription
}

func NewStubSubscribers(subs ...subscriptions.Subscription) *StubSubscribers {
	return &StubSubscribers{subs: subs}
}

func (s *StubSubscribers) Add(sub subscriptions.Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, sub)
}

func (s *StubSubscribers) SubscribersForTeam(team string) []subscriptions.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []subscriptions.Subscription
	for _, sub := range s.subs {
		if sub.TeamAbbrev == team {
			out = append(out, sub)
		}
	}
	return out
}

func (s *StubSubscribers) ActiveTeams() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]struct{})
	var out []string
	for _, sub := range s.subs {
		if _, ok := seen[sub.TeamAbbrev]; ok {
			continue
		}
		seen[sub.TeamAbbrev] = struct{}{}
		out = append(out, sub.TeamAbbrev)
	}
	sort.Strings(out)
	return out
}
