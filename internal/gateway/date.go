package gateway

import (
	"errors"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-stat-finder/internal/timeutil"
)

// ErrInvalidDate is returned when user input cannot be read as a calendar date.
var ErrInvalidDate = errors.New("invalid date")

// acceptedLayouts lists the free-form date spellings ValidateDate understands.
var acceptedLayouts = []string{
	timeutil.DateLayout,
	"2006/01/02",
	"2006/1/2",
	"2006-1-2",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"1-2-2006",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"20060102",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ValidateDate normalizes user input to YYYY-MM-DD.
func ValidateDate(input string) (string, error) {
	input = strings.Join(strings.Fields(input), " ")
	if input == "" {
		return "", ErrInvalidDate
	}
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return timeutil.FormatDate(t), nil
		}
	}
	return "", ErrInvalidDate
}
