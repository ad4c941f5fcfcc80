package server

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/config"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/logging"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/store"
)

var newRedisClient = func(opts *redis.Options) *redis.Client {
	return redis.NewClient(opts)
}

// buildStore opens the configured persister and loads existing subscriptions.
// The returned closer releases backend connections. A redis load failure is
// fatal; a bad data file only empties the store.
func buildStore(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (*store.SubscriptionStore, func() error, error) {
	var (
		persister store.Persister
		closer    = func() error { return nil }
	)

	switch cfg.Backend {
	case config.StoreBackendRedis:
		client := newRedisClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		persister = store.NewRedisPersister(client, cfg.RedisKey)
		closer = client.Close
	case config.StoreBackendFile, "":
		persister = store.NewFilePersister(cfg.DataFile)
	default:
		return nil, nil, errors.Newf("unknown store backend %q", cfg.Backend)
	}

	subs := store.NewSubscriptionStore(persister, logger)
	if err := subs.Load(ctx); err != nil {
		if cfg.Backend == config.StoreBackendRedis {
			_ = closer()
			return nil, nil, errors.Wrap(err, "load subscriptions from redis store")
		}
		// An unreadable file is overwritten by the next save.
		logging.Warn(logger, "subscriptions load failed, starting empty", "error", err)
	}
	return subs, closer, nil
}
