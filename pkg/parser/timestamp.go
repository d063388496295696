package parser

import (
	"fmt"
	"time"
)

// timestampLayouts are the accepted ISO-8601 shapes, tried in order.
// The writers emit RFC3339; older artifacts carry zone-less timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses an ISO-8601 timestamp string.
// Zone-less timestamps are interpreted as local time, matching the writers.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts[:2] {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	for _, layout := range timestampLayouts[2:] {
		if ts, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
