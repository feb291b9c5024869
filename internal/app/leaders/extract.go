package leaders

import "github.com/preston-bernstein/nba-stat-finder/internal/domain/stats"

// Extract computes the leader for every tracked category within one game.
//
// Only strictly greater present values take over a category, so a nil value
// never displaces a leader and a category without any positive value keeps
// the empty-name, zero-value leader.
func Extract(lines []stats.PlayerGameStat) stats.Leaders {
	out := make(stats.Leaders, len(stats.Categories))
	for _, c := range stats.Categories {
		var best stats.Leader
		for _, line := range lines {
			v, ok := line.Value(c)
			if !ok || v <= best.Value {
				continue
			}
			best = stats.Leader{Name: line.DisplayName(), Value: v}
		}
		out[c] = best
	}
	return out
}
