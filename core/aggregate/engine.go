// ABOUTME: Aggregation engine merging raw feed entries into sorted digest items
// ABOUTME: Normalizes dates, cleans descriptions, and assigns stable content-derived IDs

package aggregate

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"time"

	"briefly-news-core/core/domain"
	"briefly-news-core/pkg/htmlutil"
	"briefly-news-core/pkg/timeutil"
)

// Engine turns the unioned entries of a category's sources into one
// ranked DigestItem sequence.
type Engine struct {
	ttl time.Duration

	// now is swappable for tests of the date-normalization fallback
	now func() time.Time
}

// NewEngine creates a new aggregation engine
func NewEngine() *Engine {
	return &Engine{
		ttl: domain.DefaultTTL,
		now: time.Now,
	}
}

// Aggregate maps each raw entry to exactly one DigestItem with exactly
// one DigestPoint and sorts the result by descending normalized
// timestamp. The sort is stable, so entries sharing a timestamp keep
// their fetch order. Cross-source duplicates of the same story are not
// merged; each entry stands alone.
func (e *Engine) Aggregate(category string, entries []domain.RawFeedEntry) []domain.DigestItem {
	fetchedAt := e.now().Unix()

	items := make([]domain.DigestItem, 0, len(entries))
	for _, entry := range entries {
		point := domain.DigestPoint{
			Text:        entry.Title,
			Description: htmlutil.CleanDescription(entry.Description),
			URL:         entry.Link,
			Source:      entry.Source,
			PublishedAt: entry.PubDate,
		}

		items = append(items, domain.DigestItem{
			Category:  category,
			Timestamp: e.normalize(entry.PubDate),
			NewsID:    itemID(entry),
			Title:     entry.Title,
			Points:    []domain.DigestPoint{point},
			FetchedAt: fetchedAt,
			TTL:       int64(e.ttl.Seconds()),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp > items[j].Timestamp
	})

	return items
}

func (e *Engine) normalize(pubDate string) int64 {
	if t := timeutil.ParseFeedDate(pubDate); !t.IsZero() {
		return t.Unix()
	}
	// Unrecognized format sorts as "just published".
	return e.now().Unix()
}

// itemID derives a stable identifier from the entry's content so the
// same story keeps its ID across fetches. The link alone is usually
// unique; the title is mixed in for feeds that reuse link URLs.
func itemID(entry domain.RawFeedEntry) string {
	h := sha1.New()
	h.Write([]byte(entry.Link))
	h.Write([]byte{0})
	h.Write([]byte(entry.Title))
	return hex.EncodeToString(h.Sum(nil))[:16]
}
