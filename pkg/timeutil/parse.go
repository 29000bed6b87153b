// ABOUTME: Date normalization for the inconsistent formats found across RSS dialects
// ABOUTME: Tries a fixed, ordered ladder of layouts and falls back to the current time

package timeutil

import (
	"strings"
	"time"
)

// dateLayouts is the ordered list of publish-date layouts recognized
// across feed sources. The first layout that parses wins. Zone-bearing
// RFC-822 variants come first because they are what most feeds emit;
// the "-07" form covers truncated numeric zones like "+00".
var dateLayouts = []string{
	"Mon, 02 Jan 2006 15:04:05 -0700",
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04:05 -07",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"Mon, 02 Jan 2006 15:04:05",
}

// ParseFeedDate attempts to parse a feed publish-date string.
// Returns the zero time if no layout matches.
func ParseFeedDate(dateStr string) time.Time {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t
		}
	}

	return time.Time{}
}

// NormalizeDate converts a feed publish-date string to epoch seconds.
// An unrecognized format falls back to the current wall-clock time; the
// entry then sorts as if it were just published. Lossy, but it keeps
// entries from feeds with exotic date formats visible at the top rather
// than dropped or buried.
func NormalizeDate(dateStr string) int64 {
	if t := ParseFeedDate(dateStr); !t.IsZero() {
		return t.Unix()
	}
	return time.Now().Unix()
}
