package providers

import (
	"context"
	"log/slog"
	"time"

	domaingames "github.com/preston-bernstein/nba-stat-finder/internal/domain/games"
	"github.com/preston-bernstein/nba-stat-finder/internal/domain/stats"
	"github.com/preston-bernstein/nba-stat-finder/internal/logging"
	"github.com/preston-bernstein/nba-stat-finder/internal/metrics"
)

const (
	opGames       = "games"
	opPlayerStats = "player_stats"
)

// instrumentedProvider wraps a DataProvider with call metrics and logging.
// Each call is attempted exactly once.
type instrumentedProvider struct {
	inner        DataProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	now          func() time.Time
}

// NewInstrumentedProvider wraps the given provider so every upstream call is timed and counted.
func NewInstrumentedProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string) DataProvider {
	if providerName == "" {
		providerName = "provider"
	}
	return &instrumentedProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		now:          time.Now,
	}
}

func (p *instrumentedProvider) FetchGames(ctx context.Context, date string) ([]domaingames.Game, error) {
	if p.inner == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, "provider unavailable")
		return nil, ErrProviderUnavailable
	}

	start := p.now()
	games, err := p.inner.FetchGames(ctx, date)
	elapsed := p.now().Sub(start)
	p.metrics.RecordProviderAttempt(p.providerName, opGames, elapsed, err)

	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, "games fetch failed",
			slog.String(logging.FieldDate, date), slog.Any("error", err))
		return nil, err
	}
	logWithProvider(ctx, p.logger, slog.LevelInfo, p.providerName, "games fetched",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(games)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
	return games, nil
}

func (p *instrumentedProvider) FetchPlayerStats(ctx context.Context, gameID int) ([]stats.PlayerGameStat, error) {
	if p.inner == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, "provider unavailable")
		return nil, ErrProviderUnavailable
	}

	start := p.now()
	lines, err := p.inner.FetchPlayerStats(ctx, gameID)
	elapsed := p.now().Sub(start)
	p.metrics.RecordProviderAttempt(p.providerName, opPlayerStats, elapsed, err)

	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, "player stats fetch failed",
			slog.Int(logging.FieldGameID, gameID), slog.Any("error", err))
		return nil, err
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, p.providerName, "player stats fetched",
		slog.Int(logging.FieldGameID, gameID),
		slog.Int(logging.FieldCount, len(lines)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
	return lines, nil
}
