package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-stat-finder/internal/config"
	"github.com/preston-bernstein/nba-stat-finder/internal/publisher"
)

var openPublisher = publisher.Open

// buildPublisher returns nil when Redis is not configured or cannot be set up;
// reports are still served without it.
func buildPublisher(cfg config.Config, logger *slog.Logger) *publisher.StreamPublisher {
	if cfg.Redis.URL == "" {
		return nil
	}
	pub, err := openPublisher(cfg.Redis.URL, cfg.Redis.Stream)
	if err != nil {
		if logger != nil {
			logger.Warn("redis publisher setup failed, continuing without it", "error", err)
		}
		return nil
	}
	if logger != nil {
		logger.Info("publishing summaries to redis", slog.String("stream", pub.Stream()))
	}
	return pub
}
