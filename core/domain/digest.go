// ABOUTME: Digest domain models representing normalized news surfaced to the user
// ABOUTME: One DigestItem per merged feed entry, each carrying source-attributed points

package domain

import "time"

// DigestPoint is one source-attributed fact within a digest item.
type DigestPoint struct {
	// Text is the point's headline text
	Text string `json:"text"`

	// Description is the cleaned, HTML-stripped summary
	Description string `json:"description"`

	// URL links to the original article
	URL string `json:"url"`

	// Source is the display name of the contributing feed
	Source string `json:"source"`

	// PublishedAt is the source-native date string, preserved verbatim
	// for display; the normalized form is only used for sorting
	PublishedAt string `json:"publishedAt"`
}

// DigestItem is the unit of news shown to the user.
type DigestItem struct {
	// Category is the topic bucket the item was aggregated under
	Category string `json:"category"`

	// Timestamp is the normalized publish time in seconds since epoch,
	// taken from the item's first point
	Timestamp int64 `json:"timestamp"`

	// NewsID is a stable identifier derived from source content, so the
	// same story keeps the same ID across fetches
	NewsID string `json:"newsId"`

	// Title is the item headline
	Title string `json:"title"`

	// Points holds the item's source-attributed facts, never empty
	Points []DigestPoint `json:"points"`

	// FetchedAt records when the aggregation produced this item
	FetchedAt int64 `json:"fetchedAt"`

	// TTL is the item's time-to-live in seconds
	TTL int64 `json:"ttl"`
}

// IsValid checks if the item satisfies its structural invariants
func (d *DigestItem) IsValid() bool {
	if d.Title == "" {
		return false
	}

	if len(d.Points) == 0 {
		return false
	}

	return true
}

// DefaultTTL is applied to every aggregated item.
const DefaultTTL = 24 * time.Hour
