package util

import (
	"strings"
	"time"
)

var dueDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	TimeFormat,
	DateFormat,
}

// ParseDueDate accepts RFC 3339 plus the zoneless forms browsers send from
// date and datetime-local inputs. Zoneless values are taken as UTC.
func ParseDueDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var lastErr error
	for _, layout := range dueDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
