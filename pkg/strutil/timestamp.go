package strutil

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// TimestampLayout is the layout of timestamps found by ExtractTimestamp.
const TimestampLayout = "2006-01-02 15:04:05.000"

// ErrTimestampNotFound is returned when the input holds no timestamp.
var ErrTimestampNotFound = errors.New("timestamp not found")

// The fraction separator is matched loosely, as upstream log lines vary.
var timestampRegexp = regexp.MustCompile(
	`[0-9]{4}-(0[1-9]|1[0-2])-(0[1-9]|[1-2][0-9]|3[0-1]) (2[0-3]|[01][0-9]):[0-5][0-9]:[0-5][0-9].[0-9]{3}`,
)

// ExtractTimestamp returns the first "YYYY-MM-DD HH:MM:SS.mmm" timestamp in s.
func ExtractTimestamp(s string) (string, error) {
	ts := timestampRegexp.FindString(s)
	if ts == "" {
		return "", ErrTimestampNotFound
	}
	return ts, nil
}

// ParseTimestamp extracts the first timestamp in s and parses it as UTC.
// Day-of-month overflow such as February 31 is rejected here.
func ParseTimestamp(s string) (time.Time, error) {
	ts, err := ExtractTimestamp(s)
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.Parse(TimestampLayout, ts)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", ts, err)
	}
	return t, nil
}
