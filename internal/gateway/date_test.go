package gateway

import (
	"errors"
	"testing"
)

func TestValidateDateAcceptsCommonSpellings(t *testing.T) {
	cases := map[string]string{
		"2024-01-15":           "2024-01-15",
		"  2024-01-15 ":        "2024-01-15",
		"2024/01/15":           "2024-01-15",
		"2024/1/5":             "2024-01-05",
		"01/15/2024":           "2024-01-15",
		"1/5/2024":             "2024-01-05",
		"01-15-2024":           "2024-01-15",
		"Jan 15 2024":          "2024-01-15",
		"Jan 15, 2024":         "2024-01-15",
		"January 15, 2024":     "2024-01-15",
		"15 Jan 2024":          "2024-01-15",
		"15   January   2024":  "2024-01-15",
		"20240115":             "2024-01-15",
		"2024-01-15T20:30:00Z": "2024-01-15",
		"2024-01-15 20:30:00":  "2024-01-15",
	}

	for input, want := range cases {
		got, err := ValidateDate(input)
		if err != nil {
			t.Fatalf("ValidateDate(%q) unexpected error %v", input, err)
		}
		if got != want {
			t.Fatalf("ValidateDate(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestValidateDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "   ", "yesterday", "2024-13-45", "02/30/2024", "15/01/2024"} {
		if _, err := ValidateDate(input); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("ValidateDate(%q) expected ErrInvalidDate, got %v", input, err)
		}
	}
}
