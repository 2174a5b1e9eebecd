package dates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	errEmpty     = errors.New("dates: empty value")
	errMalformed = errors.New("dates: malformed value")
)

// layouts lists the accepted date representations. Timestamps are truncated
// to the date they spell out; their clock time and offset are ignored.
var layouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// Normalize parses value and returns the calendar date it names at midnight
// in loc. A nil loc means time.Local.
func Normalize(value string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, errEmpty
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return midnight(t, loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", errMalformed, value)
}

// Today returns the current calendar date according to c, at midnight in loc.
func Today(c Clock, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return midnight(c.Now().In(loc), loc)
}

// midnight keeps the year, month and day of t as written and rebuilds the
// instant at 00:00 in loc.
func midnight(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// isBlank reports whether a raw form value counts as missing.
func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// leadingYear reads the integer at the start of value, the way a browser
// reads "2024-06-15" from a date picker bound to a year field as 2024.
// Leading whitespace and a sign are allowed; anything after the digits is
// ignored.
func leadingYear(value string) (int, bool) {
	s := strings.TrimLeft(value, " \t\r\n")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	year, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return year, true
}
