package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/subscriptions"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/testutil"
)

type fakeRedis struct {
	values map[string]string
	getErr error
	setErr error
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	if f.values == nil {
		f.values = make(map[string]string)
	}
	f.values[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func TestRedisPersisterRoundTrip(t *testing.T) {
	client := &fakeRedis{}
	p := NewRedisPersister(client, "goal-notifier:subscriptions")
	ctx := context.Background()

	if subs, err := p.Load(ctx); err != nil || len(subs) != 0 {
		t.Fatalf("expected empty list for missing key, got %v err %v", subs, err)
	}

	want := []subscriptions.Subscription{testutil.SampleSubscription("1", "leafs", "TOR")}
	if err := p.Save(ctx, want); err != nil {
		t.Fatalf("expected save success, got %v", err)
	}
	got, err := p.Load(ctx)
	if err != nil || len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("unexpected load %+v err %v", got, err)
	}
}

func TestRedisPersisterErrors(t *testing.T) {
	boom := errors.New("connection refused")
	p := NewRedisPersister(&fakeRedis{getErr: boom, setErr: boom}, "k")

	if _, err := p.Load(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected get error, got %v", err)
	}
	if err := p.Save(context.Background(), nil); !errors.Is(err, boom) {
		t.Fatalf("expected set error, got %v", err)
	}

	bad := NewRedisPersister(&fakeRedis{values: map[string]string{"k": "nope"}}, "k")
	if _, err := bad.Load(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}
