package fixture

import (
	"context"
	"time"

	domaingames "github.com/preston-bernstein/nba-stat-finder/internal/domain/games"
	"github.com/preston-bernstein/nba-stat-finder/internal/domain/stats"
	"github.com/preston-bernstein/nba-stat-finder/internal/providers"
	"github.com/preston-bernstein/nba-stat-finder/internal/timeutil"
)

const providerName = "fixture"

// Provider returns a static slate of games and box scores useful for local
// testing and running without upstream credentials.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchGames returns two deterministic games for any in-season date. July and
// August return no games. Dates that do not parse are rejected the same way
// the upstream API rejects them.
func (p *Provider) FetchGames(ctx context.Context, date string) ([]domaingames.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	day, err := timeutil.ParseDate(date)
	if err != nil {
		return nil, &providers.RemoteQueryError{
			Provider: providerName,
			Errors:   `{"date":"The Date field must contain a valid date (Y-m-d)."}`,
		}
	}
	if offseason(day) {
		return []domaingames.Game{}, nil
	}

	base := gameBase(day)
	return []domaingames.Game{
		{
			ID:          base + 1,
			Provider:    providerName,
			HomeTeam:    "BOS",
			VisitorTeam: "LAL",
			Score:       domaingames.Score{Home: 112, Visitor: 104},
		},
		{
			ID:          base + 2,
			Provider:    providerName,
			HomeTeam:    "GSW",
			VisitorTeam: "MIA",
			Score:       domaingames.Score{Home: 99, Visitor: 101},
		},
	}, nil
}

// FetchPlayerStats returns the box score for a fixture game. Unknown game ids
// yield an empty list.
func (p *Provider) FetchPlayerStats(ctx context.Context, gameID int) ([]stats.PlayerGameStat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch gameID % 10 {
	case 1:
		return []stats.PlayerGameStat{
			{PlayerID: 101, FirstName: "Jane", LastName: "Doe", Points: stats.Int(31), Assists: stats.Int(7), Rebounds: stats.Int(6), Steals: stats.Int(2), Blocks: stats.Int(0)},
			{PlayerID: 102, FirstName: "John", LastName: "Smith", Points: stats.Int(22), Assists: stats.Int(11), Rebounds: stats.Int(4), Steals: nil, Blocks: stats.Int(1)},
			{PlayerID: 103, FirstName: "Ana", LastName: "Lopez", Points: nil, Assists: nil, Rebounds: nil, Steals: nil, Blocks: nil},
		}, nil
	case 2:
		return []stats.PlayerGameStat{
			{PlayerID: 201, FirstName: "Sam", LastName: "Reed", Points: stats.Int(27), Assists: stats.Int(3), Rebounds: stats.Int(13), Steals: stats.Int(1), Blocks: stats.Int(4)},
			{PlayerID: 202, FirstName: "Kim", LastName: "Park", Points: stats.Int(18), Assists: stats.Int(9), Rebounds: stats.Int(2), Steals: stats.Int(3), Blocks: nil},
		}, nil
	default:
		return []stats.PlayerGameStat{}, nil
	}
}

func offseason(day time.Time) bool {
	m := day.Month()
	return m == time.July || m == time.August
}

// gameBase encodes the date as YYYYMMDD0 so game ids stay unique across days.
func gameBase(day time.Time) int {
	return (day.Year()*10000 + int(day.Month())*100 + day.Day()) * 10
}
