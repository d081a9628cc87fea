// Package format holds the display formatting shared by the normalizers.
// All functions are pure; failures degrade to "N/A" rather than an error.
package format

import (
	"fmt"
	"strings"
	"time"
)

const (
	displayDateLayout = "Monday, January 2, 2006"
	timeOfDayLayout   = "3:04 PM"
)

// timestampLayouts covers the shapes the provider uses for sun/moon times.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// TimeOfDay converts a provider timestamp into a localized 12-hour display
// string like "6:23 AM". Returns "N/A" for anything unparseable.
func TimeOfDay(raw string) string {
	if raw == "" {
		return "N/A"
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(timeOfDayLayout)
		}
	}
	return "N/A"
}

// DisplayDate renders a date like "Wednesday, October 9, 2024".
func DisplayDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

// ParseDate accepts the date shapes callers send: plain date, datetime, or
// full RFC 3339.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// ParseClock parses a wall-clock time like "14:30" or "14:30:00".
func ParseClock(s string) (hour, minute int, err error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, perr := time.Parse(layout, s); perr == nil {
			return t.Hour(), t.Minute(), nil
		}
	}
	return 0, 0, fmt.Errorf("unrecognized time %q", s)
}

// SplitTags splits a comma-separated tag string, trimming whitespace and
// dropping empty entries.
func SplitTags(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// AbbreviateCount renders a view count the way the site displays it:
// 980 -> "980", 1234 -> "1.2k", 2500000 -> "2.5M".
func AbbreviateCount(n int) string {
	switch {
	case n >= 1_000_000:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1_000_000)) + "M"
	case n >= 1_000:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1_000)) + "k"
	default:
		return fmt.Sprintf("%d", n)
	}
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}
