package repository

import (
	"fmt"
	"time"
)

// timeLayout is the storage format for DATETIME columns.
const timeLayout = time.RFC3339

// FormatTime renders a timestamp the way DATETIME columns store it.
func FormatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// ParseTime parses a stored DATETIME string in RFC3339 or
// "2006-01-02 15:04:05" format.
func ParseTime(str string) (time.Time, error) {
	returnTime, err := time.Parse(timeLayout, str)
	if err != nil {
		returnTime, err = time.Parse("2006-01-02 15:04:05", str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse datetime: %w", err)
		}
	}
	return returnTime.UTC(), nil
}
