package server

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/poller"
)

type stubPoller struct {
	started atomic.Int32
	stopped atomic.Int32
	stopErr error
}

func (p *stubPoller) Start(ctx context.Context) { p.started.Add(1) }

func (p *stubPoller) Stop(ctx context.Context) error {
	p.stopped.Add(1)
	return p.stopErr
}

func (p *stubPoller) Status() poller.Status { return poller.Status{} }

// stubHTTPServer returns from ListenAndServe as if it had been shut down.
type stubHTTPServer struct {
	handler     http.Handler
	shutdowns   atomic.Int32
	shutdownErr error
}

func (s *stubHTTPServer) ListenAndServe() error { return http.ErrServerClosed }

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	s.shutdowns.Add(1)
	return s.shutdownErr
}

func (s *stubHTTPServer) Addr() string { return ":0" }

func (s *stubHTTPServer) Handler() http.Handler { return s.handler }

type errHTTPServer struct {
	stubHTTPServer
}

func (s *errHTTPServer) ListenAndServe() error { return errors.New("address in use") }
