// ABOUTME: RSS feed autodiscovery from regular website URLs
// ABOUTME: Scans HTML link elements for feed alternates, with shortcuts for GitHub and Reddit

package discover

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"briefly-news-core/core/interfaces"
	"github.com/PuerkitoBio/goquery"
)

// ErrNoFeedFound is returned when a page advertises no feed alternates
var ErrNoFeedFound = errors.New("no RSS feed found")

// Discoverer locates feed URLs for websites so users can add sources
// by site address instead of hunting for the feed link themselves.
type Discoverer struct {
	httpClient interfaces.HTTPClient
}

// NewDiscoverer creates a new feed discoverer
func NewDiscoverer(httpClient interfaces.HTTPClient) *Discoverer {
	return &Discoverer{
		httpClient: httpClient,
	}
}

// DiscoverFeedURL attempts to find the RSS feed URL for a website
func (d *Discoverer) DiscoverFeedURL(ctx context.Context, siteURL string) (string, error) {
	// Some sites have well-known feed locations that skip the fetch
	if strings.HasPrefix(siteURL, "https://github.com") {
		return githubFeedURL(siteURL), nil
	}

	if strings.HasPrefix(siteURL, "https://www.reddit.com") || strings.HasPrefix(siteURL, "https://reddit.com") {
		return redditFeedURL(siteURL), nil
	}

	resp, err := d.httpClient.Get(ctx, siteURL)
	if err != nil {
		return "", err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return "", errors.New("failed to fetch page")
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		return "", err
	}

	var feedURL string
	doc.Find(`link[type="application/rss+xml"], link[type="application/atom+xml"]`).Each(func(i int, s *goquery.Selection) {
		if href, exists := s.Attr("href"); exists && feedURL == "" {
			feedURL = href
		}
	})

	if feedURL == "" {
		return "", ErrNoFeedFound
	}

	return resolveURL(siteURL, feedURL)
}

// githubFeedURL returns the Atom feed for a GitHub repository's commits
func githubFeedURL(githubURL string) string {
	return strings.TrimRight(githubURL, "/") + "/commits/master.atom"
}

// redditFeedURL returns the RSS feed for a Reddit URL
func redditFeedURL(redditURL string) string {
	return strings.TrimRight(redditURL, "/") + "/.rss"
}

// resolveURL converts a possibly relative feed URL to an absolute one
func resolveURL(baseURL, candidate string) (string, error) {
	u, err := url.Parse(candidate)
	if err != nil {
		return "", err
	}

	if u.IsAbs() {
		return candidate, nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}

	return base.ResolveReference(u).String(), nil
}
