package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/preston-bernstein/nba-stat-finder/internal/app/leaders"
	"github.com/preston-bernstein/nba-stat-finder/internal/app/report"
	"github.com/preston-bernstein/nba-stat-finder/internal/config"
	httpserver "github.com/preston-bernstein/nba-stat-finder/internal/http"
	"github.com/preston-bernstein/nba-stat-finder/internal/http/handlers"
	"github.com/preston-bernstein/nba-stat-finder/internal/logging"
	"github.com/preston-bernstein/nba-stat-finder/internal/metrics"
	"github.com/preston-bernstein/nba-stat-finder/internal/providers"
	"github.com/preston-bernstein/nba-stat-finder/internal/publisher"
)

var metricsSetup = metrics.Setup

// Server owns the relay's HTTP listener, telemetry, and report pipeline.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	reports       *report.Service
	publisher     *publisher.StreamPublisher
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error

	mu      sync.Mutex
	started bool
	errs    chan error
}

// New constructs a server with the configured provider and optional publisher.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

// newServerWithProvider lets tests inject a provider; nil selects one from cfg.
func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}

	pub := buildPublisher(cfg, logger)
	reports := buildReportService(cfg, logger, recorder, provider, pub)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		reports:       reports,
		publisher:     pub,
		httpServer:    buildHTTPServer(cfg, logger, recorder, reports),
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		errs:          make(chan error, 2),
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv, metricsSrv httpServer) *Server {
	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       metrics.NewRecorder(),
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		errs:          make(chan error, 2),
	}
}

func buildReportService(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, provider providers.DataProvider, pub *publisher.StreamPublisher) *report.Service {
	opts := []report.Option{
		report.WithLogger(logger),
		report.WithMetrics(recorder),
		report.WithConcurrency(cfg.Report.Concurrency),
		report.WithKeyMode(leaders.ParseKeyMode(cfg.Report.KeyMode)),
	}
	if pub != nil {
		opts = append(opts, report.WithPublisher(pub))
	}
	return report.NewService(provider, provider, opts...)
}

func buildHTTPServer(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, reports *report.Service) httpServer {
	handler := handlers.NewHandler(reports, logger)
	router := httpserver.NewRouter(handler, logger, recorder)

	return &netHTTPServer{
		srv: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      router,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
	}
}

// Start binds the listener and serves in the background. The server is
// reachable at Addr once Start returns nil.
func (s *Server) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return errors.New("server already started")
	}

	if err := s.httpServer.Listen(); err != nil {
		return err
	}
	s.startMetrics()
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, s.errs)
	s.started = true
	return nil
}

// Addr returns the address the relay is listening on.
func (s *Server) Addr() string {
	return s.httpServer.Addr()
}

// Errors reports background serve failures.
func (s *Server) Errors() <-chan error {
	return s.errs
}

// Stop shuts the listeners down gracefully and releases telemetry and
// publisher resources. ctx bounds how long in-flight requests may take.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	if err := s.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, err)
		if s.logger != nil {
			s.logger.Error("graceful shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(ctx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(ctx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if err := s.publisher.Close(); err != nil && s.logger != nil {
		s.logger.Warn("publisher close failed", "error", err)
	}

	s.started = false
	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
	return errors.Join(errs...)
}

// Run starts the server, then waits for context cancellation or a serve
// failure before shutting down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}

	var runErr error
	select {
	case <-ctx.Done():
		if s.logger != nil {
			s.logger.Info("shutdown signal received")
		}
	case runErr = <-s.errs:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Stop(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = &netHTTPServer{
			srv: &http.Server{
				Addr:        ":" + recCfg.Port,
				Handler:     handler,
				ReadTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

// launchServer serves in a goroutine. Failures other than a clean close are
// logged and, when errs is set, reported without blocking.
func launchServer(name string, srv httpServer, logger *slog.Logger, errs chan<- error) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if errs != nil {
				select {
				case errs <- err:
				default:
				}
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
