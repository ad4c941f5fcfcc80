package server

import (
	"log/slog"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/config"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/metrics"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/providers"
)

// rateLimitBurst lets one schedule fan-out go out together.
const rateLimitBurst = 4

// providerFactory assembles the source with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.GameSource {
	return f.wrap(cfg, selectSource(cfg, f.logger))
}

func (f providerFactory) wrap(cfg config.Config, base providers.GameSource) providers.GameSource {
	name := normalizeProviderName(cfg.Provider, base)
	limited := providers.NewRateLimitedSource(base, cfg.NHL.RequestsPerSecond, rateLimitBurst, name, f.logger)
	return providers.NewRetryingSource(limited, f.logger, f.metrics, name, 0, 0)
}
