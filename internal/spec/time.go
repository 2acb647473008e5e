package spec

import (
	"fmt"
	"time"
)

// checkTimeLayouts lists the accepted ISO-8601 shapes for check_time, from
// most to least specific.
var checkTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseCheckTime parses a check_time value.
func ParseCheckTime(value string) (time.Time, error) {
	for _, layout := range checkTimeLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse check_time %q: not an ISO-8601 timestamp", value)
}
