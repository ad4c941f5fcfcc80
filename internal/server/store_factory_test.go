package server

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/config"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/testutil"
)

func TestBuildStoreFileBackend(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "subs.json")

	subs, closer, err := buildStore(ctx, config.StoreConfig{Backend: config.StoreBackendFile, DataFile: path}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := subs.Add(ctx, testutil.SampleSubscription("s1", "leafs", "TOR")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := closer(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reloaded, _, err := buildStore(ctx, config.StoreConfig{DataFile: path}, nil)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Count() != 1 {
		t.Fatalf("expected persisted subscription, got %d", reloaded.Count())
	}
}

func TestBuildStoreCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	logger, logs := testutil.NewBufferLogger()

	subs, _, err := buildStore(context.Background(), config.StoreConfig{DataFile: path}, logger)
	if err != nil {
		t.Fatalf("expected degraded start, got %v", err)
	}
	if subs.Count() != 0 {
		t.Fatalf("expected empty store, got %d", subs.Count())
	}
	if !strings.Contains(logs.String(), "starting empty") {
		t.Fatalf("expected warning, got %q", logs.String())
	}
}

func TestBuildStoreUnknownBackend(t *testing.T) {
	_, _, err := buildStore(context.Background(), config.StoreConfig{Backend: "mongo"}, nil)
	if err == nil || !strings.Contains(err.Error(), "mongo") {
		t.Fatalf("expected unknown backend error, got %v", err)
	}
}

func TestBuildStoreRedisLoadFailure(t *testing.T) {
	orig := newRedisClient
	t.Cleanup(func() { newRedisClient = orig })

	var gotOpts redis.Options
	newRedisClient = func(opts *redis.Options) *redis.Client {
		gotOpts = *opts
		// Nothing listens on port 1; fail fast without retries.
		opts.MaxRetries = -1
		opts.DialTimeout = 200 * time.Millisecond
		return redis.NewClient(opts)
	}

	cfg := config.StoreConfig{
		Backend:   config.StoreBackendRedis,
		RedisAddr: "127.0.0.1:1",
		RedisDB:   2,
		RedisKey:  "goals:subs",
	}
	_, _, err := buildStore(context.Background(), cfg, nil)
	if err == nil || !strings.Contains(err.Error(), "redis store") {
		t.Fatalf("expected redis load error, got %v", err)
	}
	if gotOpts.Addr != "127.0.0.1:1" || gotOpts.DB != 2 {
		t.Fatalf("unexpected redis options %+v", gotOpts)
	}
}
