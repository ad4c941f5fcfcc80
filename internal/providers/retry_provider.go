package providers

import (
	"context"
	"log/slog"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/games"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	fallbackProviderName = "provider"
)

type backoffFunc func(attempt int) time.Duration

// retryingSource wraps a GameSource with retry/backoff behavior and provider metrics.
type retryingSource struct {
	inner        GameSource
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	backoffFn    backoffFunc

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewRetryingSource wraps src with retries. Non-positive attempts/backoff fall back to defaults.
func NewRetryingSource(src GameSource, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) GameSource {
	return NewRetryingSourceWithRNG(src, logger, recorder, name, nil, maxAttempts, backoff)
}

// NewRetryingSourceWithRNG is NewRetryingSource with a caller-supplied jitter source.
func NewRetryingSourceWithRNG(src GameSource, logger *slog.Logger, recorder *metrics.Recorder, name string, rng *rand.Rand, maxAttempts int, backoff time.Duration) GameSource {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	if name == "" {
		name = fallbackProviderName
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &retryingSource{
		inner:        src,
		logger:       logger,
		metrics:      recorder,
		providerName: name,
		maxAttempts:  maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
		rng: rng,
	}
}

func (r *retryingSource) TodaysGames(ctx context.Context, team string) ([]games.ScheduledGame, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}
	var out []games.ScheduledGame
	err := r.do(ctx, "schedule", team, func(ctx context.Context) error {
		var err error
		out, err = r.inner.TodaysGames(ctx, team)
		return err
	})
	return out, err
}

func (r *retryingSource) GameFeed(ctx context.Context, gameID int64) (games.Feed, error) {
	if r.inner == nil {
		return games.Feed{}, ErrProviderUnavailable
	}
	var out games.Feed
	err := r.do(ctx, "feed", strconv.FormatInt(gameID, 10), func(ctx context.Context) error {
		var err error
		out, err = r.inner.GameFeed(ctx, gameID)
		return err
	})
	return out, err
}

// Ping is not retried; it reports the first answer.
func (r *retryingSource) Ping(ctx context.Context) error {
	if r.inner == nil {
		return ErrProviderUnavailable
	}
	return Ping(ctx, r.inner)
}

func (r *retryingSource) do(ctx context.Context, op, target string, call func(context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		err := call(ctx)
		r.metrics.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			return nil
		}
		lastErr = err

		if rlErr, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.providerName, rlErr.RetryAfter)
		}
		if attempt == r.maxAttempts {
			break
		}

		delay := r.computeDelay(err, attempt)
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch retry",
			"op", op, "target", target, "attempt", attempt, "max_attempts", r.maxAttempts,
			"delay_ms", delay.Milliseconds(), "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch failed",
		"op", op, "target", target, "attempts", r.maxAttempts, "error", lastErr)
	return lastErr
}

// computeDelay honours Retry-After for rate limits, otherwise applies the
// backoff with jitter in [base/2, base].
func (r *retryingSource) computeDelay(err error, attempt int) time.Duration {
	if rlErr, ok := AsRateLimitError(err); ok && rlErr.RetryAfter > 0 {
		return rlErr.RetryAfter
	}
	base := r.backoffFn(attempt)
	if base <= 0 {
		return 0
	}
	half := int64(base / 2)
	r.rngMu.Lock()
	jitter := r.rng.Int63n(half + 1)
	r.rngMu.Unlock()
	return time.Duration(half + jitter)
}
