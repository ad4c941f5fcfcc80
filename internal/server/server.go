package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/app/subscriptions"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/config"
	httpserver "github.com/preston-bernstein/nhl-goal-notifier/internal/http"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/http/handlers"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/logging"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/metrics"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/notify"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/poller"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/providers"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/store"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/tracker"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.SubscriptionStore
	tracker       *tracker.Tracker
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
	storeClose    func() error
}

// New constructs a server with the configured source, store and notifier.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServer(ctx, cfg, logger, nil, nil)
}

// newServer wires every component. A non-nil source skips provider selection
// but still gets the rate limit and retry wrappers.
func newServer(ctx context.Context, cfg config.Config, logger *slog.Logger, source providers.GameSource, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	if source == nil {
		source = factory.build(cfg)
	} else {
		source = factory.wrap(cfg, source)
	}

	subs, storeClose, err := buildStore(ctx, cfg.Store, logger)
	if err != nil {
		if metricsShutdown != nil {
			_ = metricsShutdown(ctx)
		}
		return nil, err
	}

	sender := notify.NewClient(notify.Config{
		BaseURL:   cfg.Ntfy.BaseURL,
		Token:     cfg.Ntfy.Token,
		UserAgent: cfg.NHL.UserAgent,
		Logger:    logger,
	})
	trk := tracker.New(source, subs, sender, logger, recorder, tracker.WithLogoBaseURL(cfg.NHL.LogoBaseURL))
	plr := poller.New(source, trk, subs, logger, recorder, pollIntervals(cfg.Polling), cfg.Polling.ScheduleConcurrency)
	svc := subscriptions.NewService(subs, sender, logger,
		subscriptions.WithCatchUp(plr),
		subscriptions.WithLogoBaseURL(cfg.NHL.LogoBaseURL),
	)

	handler := handlers.NewHandler(handlers.Deps{
		Subscriptions: svc,
		Subscribers:   subs,
		Games:         trk,
		Upstream:      func(ctx context.Context) error { return providers.Ping(ctx, source) },
		Notifier:      sender,
		Status:        plr.Status,
		Logger:        logger,
	})
	router := httpserver.NewRouter(handler, httpserver.RouterConfig{
		Logger:      logger,
		Metrics:     recorder,
		CORSOrigins: cfg.CORSOrigins,
	})

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         subs,
		tracker:       trk,
		httpServer:    buildHTTPServer(cfg, router),
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
		storeClose:    storeClose,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.storeClose != nil {
		if err := s.storeClose(); err != nil {
			logging.Warn(s.logger, "store close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = buildMetricsHTTPServer(recCfg.Port, handler)
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
