package report

import (
	"fmt"

	domaingames "github.com/preston-bernstein/nba-stat-finder/internal/domain/games"
)

// FormatGame renders one final score. The winner is named first; a home win
// or tie reads "HOME h vs v VISITOR", a visitor win "VISITOR v @ h HOME".
func FormatGame(g domaingames.Game) string {
	if g.VisitorWon() {
		return fmt.Sprintf("%s %d @ %d %s", g.VisitorTeam, g.Score.Visitor, g.Score.Home, g.HomeTeam)
	}
	return fmt.Sprintf("%s %d vs %d %s", g.HomeTeam, g.Score.Home, g.Score.Visitor, g.VisitorTeam)
}

// FormatGames formats games in input order.
func FormatGames(games []domaingames.Game) []string {
	lines := make([]string, 0, len(games))
	for _, g := range games {
		lines = append(lines, FormatGame(g))
	}
	return lines
}
