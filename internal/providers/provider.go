package providers

import (
	"context"

	domaingames "github.com/preston-bernstein/nba-stat-finder/internal/domain/games"
	"github.com/preston-bernstein/nba-stat-finder/internal/domain/stats"
)

// GameProvider fetches the games played on a date.
// The date is a YYYY-MM-DD string and is forwarded upstream as given.
// An empty, nil-error result means no games were played that day.
type GameProvider interface {
	FetchGames(ctx context.Context, date string) ([]domaingames.Game, error)
}

// StatsProvider fetches per-player box-score lines for one game.
type StatsProvider interface {
	FetchPlayerStats(ctx context.Context, gameID int) ([]stats.PlayerGameStat, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	GameProvider
	StatsProvider
}
