package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestSendPostsJSONMessage(t *testing.T) {
	var got publishRequest
	var auth, contentType, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL + "/", Token: "tk_abc"})
	err := c.Send(context.Background(), "leafs-fan", Notification{
		Title:    "🚨 GOAL! Jane Doe #9",
		Message:  "TOR 2 - BOS 1\nP2 10:00\nAssists: John Roe",
		ImageURL: "https://img/jane.png",
		IconURL:  "https://logo/TOR_dark.svg",
		Priority: PriorityMax,
		Tags:     []string{"ice_hockey", "goal"},
	})
	if err != nil {
		t.Fatalf("expected send to succeed, got %v", err)
	}

	if path != "/" {
		t.Fatalf("expected post to root, got %s", path)
	}
	if auth != "Bearer tk_abc" {
		t.Fatalf("expected bearer token, got %q", auth)
	}
	if contentType != "application/json" {
		t.Fatalf("expected json content type, got %q", contentType)
	}
	if got.Topic != "leafs-fan" || got.Priority != 5 || got.Attach != "https://img/jane.png" || got.Icon != "https://logo/TOR_dark.svg" {
		t.Fatalf("unexpected payload %+v", got)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "ice_hockey" {
		t.Fatalf("unexpected tags %v", got.Tags)
	}
}

func TestSendOmitsAuthWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("expected no auth header")
		}
	}))
	defer srv.Close()

	if err := NewClient(Config{BaseURL: srv.URL}).Send(context.Background(), "t", Notification{Message: "m"}); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestSendReturnsDeliveryErrorOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "topic limit reached", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	err := NewClient(Config{BaseURL: srv.URL}).Send(context.Background(), "busy", Notification{Message: "m"})
	var de *DeliveryError
	if !errors.As(err, &de) {
		t.Fatalf("expected DeliveryError, got %v", err)
	}
	if de.StatusCode != http.StatusTooManyRequests || de.Topic != "busy" {
		t.Fatalf("unexpected delivery error %+v", de)
	}
	if !strings.Contains(err.Error(), "topic limit reached") {
		t.Fatalf("expected body in message, got %q", err.Error())
	}
}

func TestSendWrapsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	err := NewClient(Config{BaseURL: srv.URL}).Send(context.Background(), "t", Notification{Message: "m"})
	var de *DeliveryError
	if !errors.As(err, &de) || de.Err == nil {
		t.Fatalf("expected transport delivery error, got %v", err)
	}
}

func TestHealth(t *testing.T) {
	var unhealthy atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/health" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(healthResponse{Healthy: !unhealthy.Load()})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	if err := c.Health(context.Background()); err != nil {
		t.Fatalf("expected healthy, got %v", err)
	}
	unhealthy.Store(true)
	if err := c.Health(context.Background()); err == nil {
		t.Fatalf("expected unhealthy error")
	}
}

func TestNormalizeBaseURLDefaults(t *testing.T) {
	if got := normalizeBaseURL(""); got != defaultBaseURL {
		t.Fatalf("expected default base url, got %s", got)
	}
	if got := NewClient(Config{BaseURL: "http://x/"}).BaseURL(); got != "http://x" {
		t.Fatalf("expected trailing slash trimmed, got %s", got)
	}
}
