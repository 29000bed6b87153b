// ABOUTME: Public types for the Briefly library API
// ABOUTME: Mirrors core domain types without exposing internal packages

package briefly

import (
	"briefly-news-core/core/domain"
	"briefly-news-core/core/news"
)

// NewsPoint is a single story within a news item
type NewsPoint struct {
	// Text is the story headline
	Text string

	// Description is the cleaned plain-text summary
	Description string

	// URL links to the full article
	URL string

	// Source is the display name of the publication
	Source string

	// PublishedAt is the publication date as the feed supplied it
	PublishedAt string
}

// NewsItem is one entry in a category's merged timeline
type NewsItem struct {
	// ID is a stable identifier for the item
	ID string

	// Category is the category this item was fetched under
	Category string

	// Timestamp is the publication time in Unix seconds
	Timestamp int64

	// Title is the item headline
	Title string

	// Points holds the item's stories
	Points []NewsPoint
}

// FeedSource identifies one subscribed feed
type FeedSource struct {
	// Name is the display name of the publication
	Name string

	// URL is the feed address
	URL string

	// Category is the category the feed belongs to
	Category string
}

// Snapshot is the observable state of a category screen
type Snapshot struct {
	// Category is the category being displayed
	Category string

	// Items is the accumulated item list
	Items []NewsItem

	// IsLoading reports an initial load in progress
	IsLoading bool

	// IsLoadingMore reports a pagination load in progress
	IsLoadingMore bool

	// Err is the most recent load failure, nil when healthy
	Err error

	// HasMore reports whether another page can be requested
	HasMore bool
}

// Listener receives state snapshots as loads progress
type Listener func(Snapshot)

// domainItemToPublic converts a domain item to the public type
func domainItemToPublic(item domain.DigestItem) NewsItem {
	points := make([]NewsPoint, len(item.Points))
	for i, p := range item.Points {
		points[i] = NewsPoint{
			Text:        p.Text,
			Description: p.Description,
			URL:         p.URL,
			Source:      p.Source,
			PublishedAt: p.PublishedAt,
		}
	}

	return NewsItem{
		ID:        item.NewsID,
		Category:  item.Category,
		Timestamp: item.Timestamp,
		Title:     item.Title,
		Points:    points,
	}
}

// snapshotToPublic converts a service snapshot to the public type
func snapshotToPublic(s news.Snapshot) Snapshot {
	items := make([]NewsItem, len(s.Items))
	for i, item := range s.Items {
		items[i] = domainItemToPublic(item)
	}

	return Snapshot{
		Category:      s.Category,
		Items:         items,
		IsLoading:     s.IsLoading,
		IsLoadingMore: s.IsLoadingMore,
		Err:           s.Err,
		HasMore:       s.HasMore(),
	}
}

// publicSourceToDomain converts a public feed source to the domain type
func publicSourceToDomain(f FeedSource) domain.FeedSource {
	return domain.FeedSource{
		Name:     f.Name,
		URL:      f.URL,
		Category: f.Category,
	}
}

// domainSourceToPublic converts a domain feed source to the public type
func domainSourceToPublic(f domain.FeedSource) FeedSource {
	return FeedSource{
		Name:     f.Name,
		URL:      f.URL,
		Category: f.Category,
	}
}
