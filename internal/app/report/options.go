package report

import (
	"log/slog"

	"github.com/preston-bernstein/nba-stat-finder/internal/app/leaders"
	"github.com/preston-bernstein/nba-stat-finder/internal/metrics"
)

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the fallback logger used when the request context carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics records build duration and outcome on the recorder.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(s *Service) {
		s.metrics = recorder
	}
}

// WithConcurrency bounds how many per-game stat fetches run at once.
// Values below 1 are treated as 1.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n < 1 {
			n = 1
		}
		s.concurrency = n
	}
}

// WithKeyMode selects how leaders are keyed when reduced across games.
func WithKeyMode(mode leaders.KeyMode) Option {
	return func(s *Service) {
		s.keyMode = mode
	}
}

// WithPublisher hands every successful summary to p.
func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}
