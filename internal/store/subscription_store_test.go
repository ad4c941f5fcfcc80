package store

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/subscriptions"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/testutil"
)

type memoryPersister struct {
	mu      sync.Mutex
	saved   []subscriptions.Subscription
	saves   int
	loadErr error
	saveErr error
}

func (m *memoryPersister) Load(context.Context) ([]subscriptions.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved, m.loadErr
}

func (m *memoryPersister) Save(_ context.Context, subs []subscriptions.Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.saved = append([]subscriptions.Subscription(nil), subs...)
	return nil
}

func TestAddRejectsDuplicateTarget(t *testing.T) {
	p := &memoryPersister{}
	s := NewSubscriptionStore(p, nil)
	ctx := context.Background()

	if err := s.Add(ctx, testutil.SampleSubscription("1", "leafs", "TOR")); err != nil {
		t.Fatalf("expected add to succeed, got %v", err)
	}
	if err := s.Add(ctx, testutil.SampleSubscription("2", "leafs", "TOR")); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if err := s.Add(ctx, testutil.SampleSubscription("3", "leafs", "BOS")); err != nil {
		t.Fatalf("expected same topic for another team to be accepted, got %v", err)
	}
	if s.Count() != 2 || p.saves != 2 {
		t.Fatalf("expected 2 subscriptions and 2 saves, got %d/%d", s.Count(), p.saves)
	}
}

func TestAddRollsBackWhenSaveFails(t *testing.T) {
	p := &memoryPersister{saveErr: errors.New("disk full")}
	s := NewSubscriptionStore(p, nil)

	if err := s.Add(context.Background(), testutil.SampleSubscription("1", "leafs", "TOR")); err == nil {
		t.Fatal("expected persist error")
	}
	if s.Count() != 0 {
		t.Fatalf("expected store unchanged, got %d", s.Count())
	}
}

func TestRemove(t *testing.T) {
	p := &memoryPersister{}
	s := NewSubscriptionStore(p, nil)
	ctx := context.Background()
	_ = s.Add(ctx, testutil.SampleSubscription("1", "a", "TOR"))
	_ = s.Add(ctx, testutil.SampleSubscription("2", "b", "BOS"))
	_ = s.Add(ctx, testutil.SampleSubscription("3", "c", "TOR"))

	removed, err := s.Remove(ctx, "2")
	if err != nil || removed.Topic != "b" {
		t.Fatalf("expected removal of 2, got %+v err %v", removed, err)
	}
	if _, err := s.Remove(ctx, "2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	ids := []string{}
	for _, sub := range s.List() {
		ids = append(ids, sub.ID)
	}
	if !reflect.DeepEqual(ids, []string{"1", "3"}) {
		t.Fatalf("expected insertion order preserved, got %v", ids)
	}
	if len(p.saved) != 2 {
		t.Fatalf("expected persisted list to follow removal, got %d", len(p.saved))
	}
}

func TestReadQueries(t *testing.T) {
	s := NewSubscriptionStore(nil, nil)
	ctx := context.Background()
	_ = s.Add(ctx, testutil.SampleSubscription("1", "a", "TOR"))
	_ = s.Add(ctx, testutil.SampleSubscription("2", "a", "BOS"))
	_ = s.Add(ctx, testutil.SampleSubscription("3", "b", "TOR"))

	if got := s.ActiveTeams(); !reflect.DeepEqual(got, []string{"BOS", "TOR"}) {
		t.Fatalf("unexpected active teams %v", got)
	}
	if got := s.SubscribersForTeam("TOR"); len(got) != 2 {
		t.Fatalf("expected 2 TOR subscribers, got %d", len(got))
	}
	if got := s.SubscribersForTeam("SEA"); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
	if got := s.ListByTopic("a"); len(got) != 2 {
		t.Fatalf("expected 2 subscriptions for topic a, got %d", len(got))
	}
}

func TestListReturnsCopy(t *testing.T) {
	s := NewSubscriptionStore(nil, nil)
	_ = s.Add(context.Background(), testutil.SampleSubscription("1", "a", "TOR"))

	list := s.List()
	list[0].TeamAbbrev = "BOS"
	if s.List()[0].TeamAbbrev != "TOR" {
		t.Fatalf("expected store to be isolated from caller mutation")
	}
}

func TestLoad(t *testing.T) {
	p := &memoryPersister{saved: []subscriptions.Subscription{testutil.SampleSubscription("1", "a", "TOR")}}
	logger, buf := testutil.NewBufferLogger()
	s := NewSubscriptionStore(p, logger)

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("expected load success, got %v", err)
	}
	if s.Count() != 1 {
		t.Fatalf("expected 1 loaded subscription, got %d", s.Count())
	}
	if buf.Len() == 0 {
		t.Fatalf("expected load to be logged")
	}

	p.loadErr = errors.New("corrupt")
	if err := s.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}
	if s.Count() != 0 {
		t.Fatalf("expected empty store after failed load, got %d", s.Count())
	}
}
