package stats

// Category names one of the tracked box-score statistics.
type Category string

const (
	Points   Category = "points"
	Assists  Category = "assists"
	Rebounds Category = "rebounds"
	Steals   Category = "steals"
	Blocks   Category = "blocks"
)

// Categories lists every tracked category in report order.
var Categories = []Category{Points, Assists, Rebounds, Steals, Blocks}

// Label returns the display label used in rendered reports.
func (c Category) Label() string {
	switch c {
	case Points:
		return "Points"
	case Assists:
		return "Assists"
	case Rebounds:
		return "Rebounds"
	case Steals:
		return "Steals"
	case Blocks:
		return "Blocks"
	default:
		return string(c)
	}
}


// PlayerGameStat is one player's line for a single game.
// A nil value means the category was not recorded for that player.
type PlayerGameStat struct {
	PlayerID  int    `json:"playerId,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Points    *int   `json:"points"`
	Assists   *int   `json:"assists"`
	Rebounds  *int   `json:"rebounds"`
	Steals    *int   `json:"steals"`
	Blocks    *int   `json:"blocks"`
}

// DisplayName joins first and last name with a single space.
func (s PlayerGameStat) DisplayName() string {
	return s.FirstName + " " + s.LastName
}

// Value returns the recorded value for a category, if any.
func (s PlayerGameStat) Value(c Category) (int, bool) {
	var v *int
	switch c {
	case Points:
		v = s.Points
	case Assists:
		v = s.Assists
	case Rebounds:
		v = s.Rebounds
	case Steals:
		v = s.Steals
	case Blocks:
		v = s.Blocks
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

// Leader is the player holding the top value for a category in some scope.
type Leader struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Leaders maps each category to its leader.
type Leaders map[Category]Leader

// Int returns a pointer to v; handy for building stat lines.
func Int(v int) *int {
	return &v
}
