package leaders

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-stat-finder/internal/domain/stats"
)

// KeyMode selects how per-game leaders are keyed when merged across a day.
type KeyMode string

const (
	// KeyByGame keys entries by game and player name, so equal display names
	// from different games never overwrite each other.
	KeyByGame KeyMode = "game"
	// KeyByName keys entries by player name only. A later game's entry for the
	// same name replaces the earlier value before the max is taken.
	KeyByName KeyMode = "name"
)

// ParseKeyMode resolves a configured key mode, defaulting to KeyByGame.
func ParseKeyMode(raw string) KeyMode {
	if strings.EqualFold(strings.TrimSpace(raw), string(KeyByName)) {
		return KeyByName
	}
	return KeyByGame
}

// GameLeaders pairs one game's identifier with its extracted leaders.
type GameLeaders struct {
	GameID  int
	Leaders stats.Leaders
}

type entry struct {
	key    string
	leader stats.Leader
}

// Reduce merges per-game leaders into one leader per category for the whole
// set. Ties go to the entry merged first.
func Reduce(perGame []GameLeaders, mode KeyMode) (stats.Leaders, error) {
	out := make(stats.Leaders, len(stats.Categories))
	for _, c := range stats.Categories {
		merged := merge(perGame, c, mode)
		if len(merged) == 0 {
			return nil, &EmptyCategoryError{Category: c}
		}

		best := merged[0].leader
		for _, e := range merged[1:] {
			if e.leader.Value > best.Value {
				best = e.leader
			}
		}
		out[c] = best
	}
	return out, nil
}

// merge flattens one category across games, preserving first-insertion order
// and letting later values overwrite earlier ones under the same key.
func merge(perGame []GameLeaders, c stats.Category, mode KeyMode) []entry {
	merged := make([]entry, 0, len(perGame))
	index := make(map[string]int, len(perGame))

	for _, g := range perGame {
		leader, ok := g.Leaders[c]
		if !ok {
			continue
		}
		key := mergeKey(mode, g.GameID, leader.Name)
		if i, seen := index[key]; seen {
			merged[i].leader = leader
			continue
		}
		index[key] = len(merged)
		merged = append(merged, entry{key: key, leader: leader})
	}
	return merged
}

func mergeKey(mode KeyMode, gameID int, name string) string {
	if mode == KeyByName {
		return name
	}
	return fmt.Sprintf("%d/%s", gameID, name)
}
