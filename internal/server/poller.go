package server

import (
	"context"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/config"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/poller"
)

// Poller defines the minimal poller behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}

func pollIntervals(cfg config.PollingConfig) poller.Intervals {
	return poller.Intervals{
		Live:          cfg.LiveGame,
		Intermission:  cfg.Intermission,
		PreGame:       cfg.PreGame,
		ScheduleCheck: cfg.ScheduleCheck,
		CatchUp:       cfg.CatchUpDelay,
	}
}
