package util

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// ErrMalformedDateTime is returned by the Parse* functions for any input that
// is not a valid dd/MM/yyyy, HH:mm:ss or dd/MM/yyyy HH:mm:ss value.
var ErrMalformedDateTime = errors.New("malformed date/time value")

// FormatDate is for rendering a date as dd/MM/yyyy
func FormatDate(d time.Time) string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day(), int(d.Month()), d.Year())
}

// ParseDate parses a dd/MM/yyyy string. The result carries no time-of-day and
// is expressed in UTC.
func ParseDate(s string) (time.Time, error) {
	day, month, year, err := splitTriple(s, "/")
	if err != nil {
		return time.Time{}, err
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalises out-of-range values (32/01 becomes 01/02), which
	// would silently store a different day than the caller sent.
	if d.Day() != day || int(d.Month()) != month || d.Year() != year {
		return time.Time{}, fmt.Errorf("%w: %q is not a calendar date", ErrMalformedDateTime, s)
	}
	return d, nil
}

// FormatClock is for rendering a time of day as HH:mm:ss
func FormatClock(t datatypes.Time) string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d:%02d", int(d/time.Hour), int(d%time.Hour/time.Minute), int(d%time.Minute/time.Second))
}

// ParseClock parses a HH:mm:ss string.
func ParseClock(s string) (datatypes.Time, error) {
	hour, minute, second, err := parseClockParts(s)
	if err != nil {
		return 0, err
	}
	return datatypes.NewTime(hour, minute, second, 0), nil
}

// FormatDateTime is for rendering a timestamp as dd/MM/yyyy HH:mm:ss in UTC,
// the zone ParseDateTime reads in.
func FormatDateTime(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%s %02d:%02d:%02d", FormatDate(t), t.Hour(), t.Minute(), t.Second())
}

// ParseDateTime parses a dd/MM/yyyy HH:mm:ss string in UTC.
func ParseDateTime(s string) (time.Time, error) {
	parts := strings.Split(s, " ")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("%w: %q is not dd/MM/yyyy HH:mm:ss", ErrMalformedDateTime, s)
	}
	d, err := ParseDate(parts[0])
	if err != nil {
		return time.Time{}, err
	}
	hour, minute, second, err := parseClockParts(parts[1])
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, second, 0, time.UTC), nil
}

func parseClockParts(s string) (int, int, int, error) {
	hour, minute, second, err := splitTriple(s, ":")
	if err != nil {
		return 0, 0, 0, err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, 0, 0, fmt.Errorf("%w: %q is not a time of day", ErrMalformedDateTime, s)
	}
	return hour, minute, second, nil
}

func splitTriple(s, sep string) (int, int, int, error) {
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q must have three %q-separated fields", ErrMalformedDateTime, s, sep)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q: %v", ErrMalformedDateTime, s, err)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}
