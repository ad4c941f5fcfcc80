package providers

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/games"
)

const defaultRequestsPerSecond = 5

// rateLimitedSource throttles upstream calls with a token bucket so schedule
// fan-out and feed polling share one request budget.
type rateLimitedSource struct {
	next    GameSource
	limiter *rate.Limiter
	logger  *slog.Logger
	name    string
}

// NewRateLimitedSource returns a GameSource that waits for a token before every call.
func NewRateLimitedSource(next GameSource, perSecond float64, burst int, name string, logger *slog.Logger) GameSource {
	if perSecond <= 0 {
		perSecond = defaultRequestsPerSecond
	}
	if burst <= 0 {
		burst = 1
	}
	if name == "" {
		name = fallbackProviderName
	}
	return &rateLimitedSource{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		logger:  logger,
		name:    name,
	}
}

func (p *rateLimitedSource) TodaysGames(ctx context.Context, team string) ([]games.ScheduledGame, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.TodaysGames(ctx, team)
}

func (p *rateLimitedSource) GameFeed(ctx context.Context, gameID int64) (games.Feed, error) {
	if err := p.wait(ctx); err != nil {
		return games.Feed{}, err
	}
	return p.next.GameFeed(ctx, gameID)
}

func (p *rateLimitedSource) Ping(ctx context.Context) error {
	if err := p.wait(ctx); err != nil {
		return err
	}
	return Ping(ctx, p.next)
}

func (p *rateLimitedSource) wait(ctx context.Context) error {
	if p.next == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider unavailable")
		return ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "rate-limited fetch canceled", "error", err)
		return err
	}
	return nil
}
