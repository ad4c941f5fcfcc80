package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/teststubs"
)

func TestRateLimitedSourceSpacesCalls(t *testing.T) {
	inner := &teststubs.StubSource{}
	rl := NewRateLimitedSource(inner, 50, 1, "stub", nil)

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := rl.TodaysGames(context.Background(), "TOR"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	// Burst of one at 50/s: the 2nd and 3rd calls each wait ~20ms.
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Fatalf("expected calls to be throttled, elapsed %s", elapsed)
	}
	if inner.ScheduleCalls.Load() != 3 {
		t.Fatalf("expected inner source called 3 times, got %d", inner.ScheduleCalls.Load())
	}
}

func TestRateLimitedSourceRespectsCanceledContext(t *testing.T) {
	inner := &teststubs.StubSource{}
	rl := NewRateLimitedSource(inner, 1, 1, "stub", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := rl.GameFeed(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if inner.FeedCalls.Load() != 0 {
		t.Fatalf("expected inner source not called on canceled context")
	}
}

func TestRateLimitedSourceHandlesNilInner(t *testing.T) {
	rl := NewRateLimitedSource(nil, 1, 1, "", nil)

	if _, err := rl.TodaysGames(context.Background(), "TOR"); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestRateLimitedSourceDefaults(t *testing.T) {
	rl := NewRateLimitedSource(&teststubs.StubSource{}, 0, 0, "", nil).(*rateLimitedSource)
	if rl.limiter.Limit() != defaultRequestsPerSecond || rl.limiter.Burst() != 1 {
		t.Fatalf("unexpected limiter defaults %v/%d", rl.limiter.Limit(), rl.limiter.Burst())
	}
	if err := rl.Ping(context.Background()); err != nil {
		t.Fatalf("expected ping passthrough, got %v", err)
	}
}
