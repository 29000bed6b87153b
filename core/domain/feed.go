// ABOUTME: Feed domain models for configured RSS sources and parsed feed content
// ABOUTME: Provides validation logic to ensure source data integrity

package domain

import (
	"errors"
	"net/url"
)

// FeedSource is one configured RSS feed contributing to a category.
type FeedSource struct {
	// Name is the human-readable display name of the source
	Name string `json:"name"`

	// URL is the RSS feed URL
	URL string `json:"url"`

	// Category is the topic bucket this source belongs to
	Category string `json:"category"`
}

// Validate checks if the source has valid required fields
func (s FeedSource) Validate() error {
	if s.Name == "" {
		return errors.New("source name cannot be empty")
	}

	if s.Category == "" {
		return errors.New("source category cannot be empty")
	}

	parsed, err := url.Parse(s.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("source URL is not valid format")
	}

	return nil
}

// FeedResult is the outcome of parsing one RSS document.
type FeedResult struct {
	// Title is the feed's own channel title
	Title string

	// Description is the feed's channel description
	Description string

	// Link is the website URL associated with the feed
	Link string

	// Items contains the parsed entries, in document order
	Items []RawFeedEntry
}

// RawFeedEntry is one item element of a feed, fields trimmed but
// otherwise as the source published them.
type RawFeedEntry struct {
	// Title is the item headline
	Title string

	// Description is the raw, possibly HTML-bearing summary
	Description string

	// Link is the URL to the original article
	Link string

	// PubDate is the source-native publish date string, unparsed
	PubDate string

	// Source is the display name of the contributing feed
	Source string
}
