package testutil

import (
	domaingames "github.com/preston-bernstein/nba-stat-finder/internal/domain/games"
	"github.com/preston-bernstein/nba-stat-finder/internal/domain/stats"
)

// SampleGame returns a finished game fixture.
func SampleGame(id int, home string, homeScore int, visitor string, visitorScore int) domaingames.Game {
	return domaingames.Game{
		ID:          id,
		Provider:    "test",
		HomeTeam:    home,
		VisitorTeam: visitor,
		Score:       domaingames.Score{Home: homeScore, Visitor: visitorScore},
	}
}

// SampleLine returns a stat line with every category recorded.
func SampleLine(first, last string, points, assists, rebounds, steals, blocks int) stats.PlayerGameStat {
	return stats.PlayerGameStat{
		FirstName: first,
		LastName:  last,
		Points:    stats.Int(points),
		Assists:   stats.Int(assists),
		Rebounds:  stats.Int(rebounds),
		Steals:    stats.Int(steals),
		Blocks:    stats.Int(blocks),
	}
}
