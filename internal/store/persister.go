package store

import (
	"context"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/subscriptions"
)

// Persister saves and restores the full subscription list.
type Persister interface {
	Load(ctx context.Context) ([]subscriptions.Subscription, error)
	Save(ctx context.Context, subs []subscriptions.Subscription) error
}

// document is the persisted shape shared by every backend.
type document struct {
	Subscriptions []subscriptions.Subscription `json:"subscriptions"`
}

// NopPersister keeps subscriptions in memory only.
type NopPersister struct{}

func (NopPersister) Load(context.Context) ([]subscriptions.Subscription, error) { return nil, nil }

func (NopPersister) Save(context.Context, []subscriptions.Subscription) error { return nil }
