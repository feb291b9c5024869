package report

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-stat-finder/internal/domain/stats"
)

// DailySummary is the per-date result handed back to callers.
type DailySummary struct {
	Date      string        `json:"date"`
	GameLines []string      `json:"games"`
	Leaders   stats.Leaders `json:"leaders,omitempty"`
}

// NoGames reports whether the summary covers a date without games.
func (s DailySummary) NoGames() bool {
	return len(s.GameLines) == 0
}

// Text renders the summary as the plain-text body returned to callers.
func (s DailySummary) Text() string {
	if s.NoGames() {
		return fmt.Sprintf("No games played on %s", s.Date)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Games Played on %s:\n", s.Date)
	b.WriteString(strings.Join(s.GameLines, "\n"))
	fmt.Fprintf(&b, "\nStat Leaders on %s:\n", s.Date)

	lines := make([]string, 0, len(stats.Categories))
	for _, c := range stats.Categories {
		leader := s.Leaders[c]
		lines = append(lines, fmt.Sprintf("%s: %s (%d)", c.Label(), leader.Name, leader.Value))
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}
