package server

import (
	"log/slog"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/config"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/providers"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/providers/fixture"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/providers/nhlweb"
)

const (
	providerNHLWeb  = "nhlweb"
	providerFixture = "fixture"
)

func selectSource(cfg config.Config, logger *slog.Logger) providers.GameSource {
	switch normalizeProviderName(cfg.Provider, nil) {
	case providerNHLWeb, "nhl", "provider":
		return newNHLClient(cfg)
	case providerFixture:
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to nhlweb", slog.String("provider", cfg.Provider))
		}
		return newNHLClient(cfg)
	}
}

func newNHLClient(cfg config.Config) *nhlweb.Client {
	return nhlweb.NewClient(nhlweb.Config{
		BaseURL:   cfg.NHL.BaseURL,
		Timezone:  cfg.NHL.Timezone,
		UserAgent: cfg.NHL.UserAgent,
	})
}
