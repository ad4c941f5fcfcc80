package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/tracker"
)

const probeTimeout = 5 * time.Second

type debugSubscription struct {
	Topic string `json:"topic"`
	Team  string `json:"team"`
}

type debugResponse struct {
	Upstream      string              `json:"upstream"`
	Ntfy          string              `json:"ntfy"`
	Subscriptions []debugSubscription `json:"subscriptions"`
	TrackedGames  []tracker.GameState `json:"trackedGames"`
}

// Debug probes outbound connectivity and dumps current state.
func (h *Handler) Debug(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	resp := debugResponse{
		Upstream:      probe(ctx, h.upstream),
		Subscriptions: []debugSubscription{},
		TrackedGames:  []tracker.GameState{},
	}
	if h.notifier != nil {
		resp.Ntfy = probe(ctx, h.notifier.Health)
	} else {
		resp.Ntfy = probe(ctx, nil)
	}
	for _, view := range h.subs.List("") {
		resp.Subscriptions = append(resp.Subscriptions, debugSubscription{Topic: view.Topic, Team: view.TeamAbbrev})
	}
	if h.games != nil {
		resp.TrackedGames = h.games.Games()
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

func probe(ctx context.Context, check func(context.Context) error) string {
	if check == nil {
		return "not configured"
	}
	if err := check(ctx); err != nil {
		return "FAIL: " + err.Error()
	}
	return "OK"
}
