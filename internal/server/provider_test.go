package server

import (
	"context"
	"strings"
	"testing"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/config"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/games"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/metrics"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/providers/fixture"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/providers/nhlweb"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/testutil"
)

type anonymousSource struct{}

func (anonymousSource) TodaysGames(context.Context, string) ([]games.ScheduledGame, error) {
	return nil, nil
}

func (anonymousSource) GameFeed(context.Context, int64) (games.Feed, error) {
	return games.Feed{}, nil
}

func TestSelectSource(t *testing.T) {
	tests := []struct {
		provider string
		fixture  bool
	}{
		{"nhlweb", false},
		{"NHL", false},
		{"", false},
		{"fixture", true},
		{" Fixture ", true},
	}
	for _, tt := range tests {
		src := selectSource(config.Config{Provider: tt.provider}, nil)
		_, isFixture := src.(*fixture.Provider)
		_, isNHL := src.(*nhlweb.Client)
		if isFixture != tt.fixture || isNHL == tt.fixture {
			t.Fatalf("provider %q: got %T", tt.provider, src)
		}
	}
}

func TestSelectSourceWarnsOnUnknownProvider(t *testing.T) {
	logger, logs := testutil.NewBufferLogger()
	src := selectSource(config.Config{Provider: "espn"}, logger)
	if _, ok := src.(*nhlweb.Client); !ok {
		t.Fatalf("expected nhlweb fallback, got %T", src)
	}
	if !strings.Contains(logs.String(), "unknown provider") {
		t.Fatalf("expected warning, got %q", logs.String())
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName(" NHLWeb ", nil); got != "nhlweb" {
		t.Fatalf("expected configured name, got %q", got)
	}
	if got := normalizeProviderName("", fixture.New()); got != "fixture" {
		t.Fatalf("expected source name, got %q", got)
	}
	if got := normalizeProviderName("", anonymousSource{}); got != "server.anonymoussource" {
		t.Fatalf("expected type name, got %q", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected default name, got %q", got)
	}
}

func TestProviderFactoryWrapsSource(t *testing.T) {
	rec := metrics.NewRecorder()
	factory := newProviderFactory(nil, rec)
	src := factory.build(config.Config{Provider: "fixture", NHL: config.NHLConfig{RequestsPerSecond: 1000}})

	if _, ok := src.(*fixture.Provider); ok {
		t.Fatalf("expected wrapped source")
	}
	got, err := src.TodaysGames(context.Background(), "TOR")
	if err != nil || len(got) != 1 || got[0].ID != fixture.LiveGameID {
		t.Fatalf("unexpected games %v err %v", got, err)
	}
	if rec.ProviderCalls("fixture") != 1 {
		t.Fatalf("expected one recorded attempt, got %d", rec.ProviderCalls("fixture"))
	}
}
