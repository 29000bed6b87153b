// ABOUTME: Feed preview for validating a candidate source before it joins a category
// ABOUTME: Fetches and parses the feed with gofeed and reports its metadata and recent entries

package discover

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"
	"time"

	"briefly-news-core/core/interfaces"
	"github.com/mmcdole/gofeed"
)

// maxPreviewEntries caps how many entries a preview reports
const maxPreviewEntries = 5

// Preview describes a candidate feed before it is added to the registry
type Preview struct {
	// Title is the feed's own title
	Title string

	// Description is the feed's own description
	Description string

	// Link is the feed's website link
	Link string

	// FeedType is the detected format (rss/atom/json)
	FeedType string

	// Updated is the feed's last update time, zero if unknown
	Updated time.Time

	// Entries holds titles of the most recent entries
	Entries []string
}

// Previewer validates candidate feed URLs by fetching and parsing them
type Previewer struct {
	httpClient interfaces.HTTPClient
}

// NewPreviewer creates a new feed previewer
func NewPreviewer(httpClient interfaces.HTTPClient) *Previewer {
	return &Previewer{
		httpClient: httpClient,
	}
}

// PreviewFeed fetches feedURL and returns its metadata.
// An error means the URL does not serve a parseable feed and should not
// be added to the registry.
func (p *Previewer) PreviewFeed(ctx context.Context, feedURL string) (*Preview, error) {
	if feedURL == "" {
		return nil, errors.New("feed URL cannot be empty")
	}
	if parsed, err := url.Parse(feedURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.New("feed URL is not a valid absolute URL")
	}

	resp, err := p.httpClient.Get(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, errors.New("feed URL did not return a successful response")
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	preview := &Preview{
		Title:       parsed.Title,
		Description: parsed.Description,
		Link:        parsed.Link,
		FeedType:    parsed.FeedType,
	}

	if parsed.UpdatedParsed != nil {
		preview.Updated = *parsed.UpdatedParsed
	} else if parsed.PublishedParsed != nil {
		preview.Updated = *parsed.PublishedParsed
	}

	for i, item := range parsed.Items {
		if i >= maxPreviewEntries {
			break
		}
		preview.Entries = append(preview.Entries, item.Title)
	}

	return preview, nil
}
