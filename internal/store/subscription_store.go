package store

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/subscriptions"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/logging"
)

// SubscriptionStore keeps subscriptions in memory and writes every change
// through to a Persister.
type SubscriptionStore struct {
	mu        sync.RWMutex
	subs      []subscriptions.Subscription
	persister Persister
	logger    *slog.Logger
}

// NewSubscriptionStore constructs an empty store. A nil persister keeps data in memory only.
func NewSubscriptionStore(p Persister, logger *slog.Logger) *SubscriptionStore {
	if p == nil {
		p = NopPersister{}
	}
	return &SubscriptionStore{persister: p, logger: logger}
}

// Load replaces the in-memory list with the persisted one. On failure the
// store is left empty and the error is returned.
func (s *SubscriptionStore) Load(ctx context.Context) error {
	loaded, err := s.persister.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.subs = nil
		return err
	}
	s.subs = append([]subscriptions.Subscription(nil), loaded...)
	logging.Info(s.logger, "subscriptions loaded", logging.FieldCount, len(s.subs))
	return nil
}

// Add appends sub unless the topic already follows the team. The change is
// rolled back if it cannot be persisted.
func (s *SubscriptionStore) Add(ctx context.Context, sub subscriptions.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.subs {
		if existing.SameTarget(sub) {
			return ErrDuplicate
		}
	}

	next := append(s.copyLocked(), sub)
	if err := s.persister.Save(ctx, next); err != nil {
		return err
	}
	s.subs = next
	return nil
}

// Remove deletes the subscription with id and returns it.
func (s *SubscriptionStore) Remove(ctx context.Context, id string) (subscriptions.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, existing := range s.subs {
		if existing.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return subscriptions.Subscription{}, ErrNotFound
	}

	removed := s.subs[idx]
	next := make([]subscriptions.Subscription, 0, len(s.subs)-1)
	next = append(next, s.subs[:idx]...)
	next = append(next, s.subs[idx+1:]...)
	if err := s.persister.Save(ctx, next); err != nil {
		return subscriptions.Subscription{}, err
	}
	s.subs = next
	return removed, nil
}

// List returns every subscription in insertion order.
func (s *SubscriptionStore) List() []subscriptions.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

// ListByTopic returns the subscriptions for one topic.
func (s *SubscriptionStore) ListByTopic(topic string) []subscriptions.Subscription {
	return s.filter(func(sub subscriptions.Subscription) bool { return sub.Topic == topic })
}

// SubscribersForTeam returns the subscriptions following team.
func (s *SubscriptionStore) SubscribersForTeam(team string) []subscriptions.Subscription {
	return s.filter(func(sub subscriptions.Subscription) bool { return sub.TeamAbbrev == team })
}

// ActiveTeams returns the distinct followed teams, sorted.
func (s *SubscriptionStore) ActiveTeams() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.subs))
	teams := make([]string, 0, len(s.subs))
	for _, sub := range s.subs {
		if _, ok := seen[sub.TeamAbbrev]; ok {
			continue
		}
		seen[sub.TeamAbbrev] = struct{}{}
		teams = append(teams, sub.TeamAbbrev)
	}
	sort.Strings(teams)
	return teams
}

// Count returns the number of subscriptions.
func (s *SubscriptionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

func (s *SubscriptionStore) filter(keep func(subscriptions.Subscription) bool) []subscriptions.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]subscriptions.Subscription, 0)
	for _, sub := range s.subs {
		if keep(sub) {
			out = append(out, sub)
		}
	}
	return out
}

func (s *SubscriptionStore) copyLocked() []subscriptions.Subscription {
	return append(make([]subscriptions.Subscription, 0, len(s.subs)+1), s.subs...)
}
