package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-stat-finder/internal/config"
	"github.com/preston-bernstein/nba-stat-finder/internal/logging"
	"github.com/preston-bernstein/nba-stat-finder/internal/providers"
	"github.com/preston-bernstein/nba-stat-finder/internal/providers/apinba"
	"github.com/preston-bernstein/nba-stat-finder/internal/providers/fixture"
)

// selectProvider builds the configured data provider. Only an explicit
// "fixture" selects offline data; anything unrecognized gets the live client.
func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case config.ProviderFixture:
		return fixture.New()
	case config.ProviderAPINBA, "":
	default:
		logging.Error(logger, "unknown provider, falling back to apinba", nil,
			slog.String(logging.FieldProvider, cfg.Provider),
		)
	}
	if cfg.APINBA.APIKey == "" {
		logging.Warn(logger, "api-nba key not set; upstream requests will be rejected")
	}
	return apinba.NewClient(apinba.Config{
		BaseURL: cfg.APINBA.BaseURL,
		APIKey:  cfg.APINBA.APIKey,
		Host:    cfg.APINBA.Host,
		Timeout: cfg.APINBA.Timeout,
	})
}
