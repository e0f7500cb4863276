package utils

import (
	"fmt"
	"strings"
	"time"
)

var scheduleLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseScheduleDate accepts a plain date or a timestamp with or without a zone; zoneless values are UTC
func ParseScheduleDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range scheduleLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd or an RFC 3339 timestamp", s)
}
