package classify

import (
	"strings"
	"time"
)

// dateLayouts are tried in order. ISO forms come first, then month-first
// forms; day-first forms follow so they only catch values month-first
// parsing rejects, like 25/12/2024. Single-digit layouts also accept
// two-digit components, so 03/04/2024 and 3/4/2024 share one entry.
var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	"2006/1/2",
	"2006.1.2",
	"1/2/2006",
	"1-2-2006",
	"1/2/06",
	"1-2-06",
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2.1.06",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"1/2/2006 15:04",
}

// ParseDate runs a generic calendar-date parse over the known layouts and
// reports whether any of them accepted the value.
func ParseDate(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
