// ABOUTME: Wire decoding of hosted API news items into domain digest items

package remote

import (
	"encoding/json"

	"briefly-news-core/core/domain"
)

// wireItem mirrors the hosted API's item shape, which matches the
// domain model field for field.
type wireItem struct {
	Category  string      `json:"category"`
	Timestamp int64       `json:"timestamp"`
	NewsID    string      `json:"newsId"`
	Title     string      `json:"title"`
	Points    []wirePoint `json:"points"`
	FetchedAt int64       `json:"fetchedAt"`
	TTL       int64       `json:"ttl"`
}

type wirePoint struct {
	Text        string `json:"text"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
}

func decodeItem(raw json.RawMessage) (domain.DigestItem, error) {
	var w wireItem
	if err := json.Unmarshal(raw, &w); err != nil {
		return domain.DigestItem{}, err
	}

	points := make([]domain.DigestPoint, len(w.Points))
	for i, p := range w.Points {
		points[i] = domain.DigestPoint{
			Text:        p.Text,
			Description: p.Description,
			URL:         p.URL,
			Source:      p.Source,
			PublishedAt: p.PublishedAt,
		}
	}

	return domain.DigestItem{
		Category:  w.Category,
		Timestamp: w.Timestamp,
		NewsID:    w.NewsID,
		Title:     w.Title,
		Points:    points,
		FetchedAt: w.FetchedAt,
		TTL:       w.TTL,
	}, nil
}
