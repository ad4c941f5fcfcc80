package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/app/subscriptions"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/teams"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/poller"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/tracker"
)

// SubscriptionService is the application layer behind the subscription routes.
type SubscriptionService interface {
	Teams() []teams.Team
	List(topic string) []subscriptions.View
	Subscribe(ctx context.Context, req subscriptions.SubscribeRequest) (subscriptions.View, error)
	Unsubscribe(ctx context.Context, id string) error
	SendTest(ctx context.Context, req subscriptions.TestRequest) error
}

// SubscriberStats summarises the subscription store.
type SubscriberStats interface {
	Count() int
	ActiveTeams() []string
}

// GameStats exposes the tracker's current games.
type GameStats interface {
	Games() []tracker.GameState
	Count() int
}

// HealthChecker probes an outbound dependency.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Deps groups everything the handlers read from.
type Deps struct {
	Subscriptions SubscriptionService
	Subscribers   SubscriberStats
	Games         GameStats
	// Upstream pings the schedule source. Nil reports "not configured".
	Upstream func(ctx context.Context) error
	Notifier HealthChecker
	Status   func() poller.Status
	Logger   *slog.Logger
}

// Handler serves the subscription API and the operational endpoints.
type Handler struct {
	subs     SubscriptionService
	stats    SubscriberStats
	games    GameStats
	upstream func(ctx context.Context) error
	notifier HealthChecker
	statusFn func() poller.Status
	logger   *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(d Deps) *Handler {
	return &Handler{
		subs:     d.Subscriptions,
		stats:    d.Subscribers,
		games:    d.Games,
		upstream: d.Upstream,
		notifier: d.Notifier,
		statusFn: d.Status,
		logger:   d.Logger,
	}
}

type healthResponse struct {
	Status        string   `json:"status"`
	Subscriptions int      `json:"subscriptions"`
	ActiveTeams   []string `json:"activeTeams"`
	TrackedGames  int      `json:"trackedGames"`
}

// Health reports subscription and tracking counts.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	resp := healthResponse{Status: "ok", ActiveTeams: []string{}}
	if h.stats != nil {
		resp.Subscriptions = h.stats.Count()
		resp.ActiveTeams = h.stats.ActiveTeams()
	}
	if h.games != nil {
		resp.TrackedGames = h.games.Count()
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// Ready reports readiness for traffic based on the poll loop's health.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}
