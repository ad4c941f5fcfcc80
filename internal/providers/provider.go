package providers

import (
	"context"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/games"
)

// ScheduleProvider lists the games a team plays on the current local day.
type ScheduleProvider interface {
	TodaysGames(ctx context.Context, team string) ([]games.ScheduledGame, error)
}

// FeedProvider fetches the live play-by-play snapshot for one game.
type FeedProvider interface {
	GameFeed(ctx context.Context, gameID int64) (games.Feed, error)
}

// GameSource combines schedule and feed access.
type GameSource interface {
	ScheduleProvider
	FeedProvider
}

// Pinger is implemented by sources that can report upstream reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Ping checks reachability when src supports it; other sources report healthy.
func Ping(ctx context.Context, src GameSource) error {
	if p, ok := src.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
