package transform

import (
	"strings"
	"time"
)

// FormatDate converts a YYYY-MM-DD date string to its DD/MM/YYYY display
// form. The second return value is false when 'raw' is empty or unparseable,
// in which case the date is treated as unknown and omitted downstream.
func FormatDate(raw string) (string, bool) {

	t, ok := parseDate(raw)

	if !ok {
		return "", false
	}

	return t.Format("02/01/2006"), true
}

// YearAdded derives the four-digit year component from a YYYY-MM-DD date
// string. The second return value is false when 'raw' is empty or
// unparseable.
func YearAdded(raw string) (string, bool) {

	t, ok := parseDate(raw)

	if !ok {
		return "", false
	}

	return t.Format("2006"), true
}

func parseDate(raw string) (time.Time, bool) {

	raw = strings.TrimSpace(raw)

	if raw == "" {
		return time.Time{}, false
	}

	t, err := time.Parse("2006-01-02", raw)

	if err != nil {
		return time.Time{}, false
	}

	return t, true
}
