package activity

import (
	"fmt"
	"strings"
	"time"
)

// Offset-less layouts are read as UTC.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp parses an ISO 8601 timestamp. A trailing "Z" is treated
// as "+00:00".
func ParseTimestamp(value string) (time.Time, error) {
	normalized := strings.TrimSpace(value)
	if strings.HasSuffix(normalized, "Z") {
		normalized = strings.TrimSuffix(normalized, "Z") + "+00:00"
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid isoformat string: %q", value)
}

func parseWindow(start, end string) (time.Time, time.Time, error) {
	if start == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("start is required")
	}
	if end == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("end is required")
	}

	startTime, err := ParseTimestamp(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endTime, err := ParseTimestamp(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return startTime, endTime, nil
}
