package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/subscriptions"
)

// redisClient is the subset of *redis.Client used here.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RedisPersister stores the subscription document under a single key.
type RedisPersister struct {
	client redisClient
	key    string
}

// NewRedisPersister returns a persister using client and key.
func NewRedisPersister(client redisClient, key string) *RedisPersister {
	return &RedisPersister{client: client, key: key}
}

// Load reads the document. A missing key is an empty list.
func (p *RedisPersister) Load(ctx context.Context) ([]subscriptions.Subscription, error) {
	raw, err := p.client.Get(ctx, p.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "redis get %s", p.key)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "decode %s", p.key)
	}
	return doc.Subscriptions, nil
}

// Save overwrites the key with the full document.
func (p *RedisPersister) Save(ctx context.Context, subs []subscriptions.Subscription) error {
	if subs == nil {
		subs = []subscriptions.Subscription{}
	}
	data, err := json.Marshal(document{Subscriptions: subs})
	if err != nil {
		return errors.Wrap(err, "encode subscriptions")
	}
	if err := p.client.Set(ctx, p.key, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", p.key)
	}
	return nil
}
