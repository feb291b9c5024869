package leaders

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/nba-stat-finder/internal/domain/stats"
)

// EmptyCategoryError reports a category that had no entries to reduce.
type EmptyCategoryError struct {
	Category stats.Category
}

func (e *EmptyCategoryError) Error() string {
	return fmt.Sprintf("no leader entries for category %s", e.Category)
}

// AsEmptyCategoryError attempts to unwrap an error into an EmptyCategoryError.
func AsEmptyCategoryError(err error) (*EmptyCategoryError, bool) {
	var ecErr *EmptyCategoryError
	if errors.As(err, &ecErr) {
		return ecErr, true
	}
	return nil, false
}
