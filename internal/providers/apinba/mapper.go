package apinba

import (
	"bytes"
	"encoding/json"

	domaingames "github.com/preston-bernstein/nba-stat-finder/internal/domain/games"
	"github.com/preston-bernstein/nba-stat-finder/internal/domain/stats"
)

func mapGame(g gameResponse) domaingames.Game {
	return domaingames.Game{
		ID:          g.ID,
		Provider:    providerName,
		HomeTeam:    g.Teams.Home.Code,
		VisitorTeam: g.Teams.Visitors.Code,
		Score: domaingames.Score{
			Home:    pointsOrZero(g.Scores.Home.Points),
			Visitor: pointsOrZero(g.Scores.Visitors.Points),
		},
	}
}

func mapPlayerStat(s playerStatResponse) stats.PlayerGameStat {
	return stats.PlayerGameStat{
		PlayerID:  s.Player.ID,
		FirstName: s.Player.FirstName,
		LastName:  s.Player.LastName,
		Points:    s.Points,
		Assists:   s.Assists,
		Rebounds:  s.TotReb,
		Steals:    s.Steals,
		Blocks:    s.Blocks,
	}
}

func pointsOrZero(p *int) int {
	if p == nil || *p < 0 {
		return 0
	}
	return *p
}

// hasErrors reports whether the upstream errors field carries anything.
// The API sends an empty list on success and a list or object on failure.
func hasErrors(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", "[]", "{}":
		return false
	}
	var list []any
	if err := json.Unmarshal(trimmed, &list); err == nil {
		return len(list) > 0
	}
	return true
}
