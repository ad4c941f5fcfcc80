package handlers

import (
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/app/subscriptions"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/logging"
)

// Teams lists the team directory.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"teams": h.subs.Teams()}, h.logger)
}

// Subscriptions lists subscriptions, optionally filtered by ?topic=.
func (h *Handler) Subscriptions(w http.ResponseWriter, r *http.Request) {
	topic := strings.TrimSpace(r.URL.Query().Get("topic"))
	writeJSON(w, http.StatusOK, map[string]any{"subscriptions": h.subs.List(topic)}, h.logger)
}

// Subscribe creates a subscription and kicks off a catch-up for its team.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)

	var req subscriptions.SubscribeRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}

	view, err := h.subs.Subscribe(r.Context(), req)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, map[string]any{"subscription": view}, logger)
	case subscriptions.IsValidation(err):
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
	case errors.Is(err, subscriptions.ErrAlreadySubscribed):
		writeError(w, r, http.StatusConflict, subscriptions.ErrAlreadySubscribed.Error(), logger)
	default:
		logging.Error(logger, "subscribe failed", err)
		writeError(w, r, http.StatusInternalServerError, "failed to save subscription", logger)
	}
}

// Unsubscribe removes a subscription by id.
func (h *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	id := chi.URLParam(r, "id")

	err := h.subs.Unsubscribe(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true}, logger)
	case errors.Is(err, subscriptions.ErrNotFound):
		writeError(w, r, http.StatusNotFound, subscriptions.ErrNotFound.Error(), logger)
	default:
		logging.Error(logger, "unsubscribe failed", err)
		writeError(w, r, http.StatusInternalServerError, "failed to remove subscription", logger)
	}
}

// SendTest pushes a test notification to a topic.
func (h *Handler) SendTest(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)

	var req subscriptions.TestRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}

	err := h.subs.SendTest(r.Context(), req)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true}, logger)
	case subscriptions.IsValidation(err):
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
	default:
		writeError(w, r, http.StatusInternalServerError, err.Error(), logger)
	}
}
