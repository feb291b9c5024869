package games

// Score captures home and visitor points.
type Score struct {
	Home    int `json:"home"`
	Visitor int `json:"visitor"`
}

// Game is one finished (or scheduled) game for a date, as reported upstream.
type Game struct {
	ID          int    `json:"id"`
	Provider    string `json:"provider"`
	HomeTeam    string `json:"homeTeam"`
	VisitorTeam string `json:"visitorTeam"`
	Score       Score  `json:"score"`
}

// VisitorWon reports whether the visiting side outscored the home side.
// Ties count as home results.
func (g Game) VisitorWon() bool {
	return g.Score.Visitor > g.Score.Home
}

// IDs returns the game identifiers in the order the games were given.
func IDs(games []Game) []int {
	ids := make([]int, 0, len(games))
	for _, g := range games {
		ids = append(ids, g.ID)
	}
	return ids
}
