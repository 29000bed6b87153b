// ABOUTME: Streaming RSS parser producing normalized feed entries from raw XML
// ABOUTME: Event-driven token walk tolerant of missing fields and unknown elements

package rss

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"briefly-news-core/core/domain"
	"golang.org/x/net/html/charset"
)

// ErrNoItems is returned when a document parses as XML but contains no
// recognizable item elements.
var ErrNoItems = errors.New("feed contains no items")

// parseState accumulates text for the element currently open. Character
// data is additive because the decoder may deliver a single text node in
// several chunks (entity boundaries, CDATA sections).
type parseState struct {
	currentElement string
	insideItem     bool

	feedTitle       strings.Builder
	feedDescription strings.Builder
	feedLink        strings.Builder

	itemTitle       strings.Builder
	itemDescription strings.Builder
	itemLink        strings.Builder
	itemPubDate     strings.Builder

	items []domain.RawFeedEntry
}

// Parse consumes raw feed bytes and emits the feed's metadata plus one
// RawFeedEntry per item element. Entries are tagged with sourceName, or
// with the feed's own title when no label is supplied. Field values are
// trimmed of surrounding whitespace; a missing field is an empty string.
// Only malformed XML is a hard error.
func Parse(data []byte, sourceName string) (*domain.FeedResult, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charset.NewReaderLabel

	state := &parseState{}

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			state.startElement(t.Name.Local)
		case xml.CharData:
			state.text(string(t))
		case xml.EndElement:
			state.endElement(t.Name.Local, sourceName)
		}
	}

	if len(state.items) == 0 {
		return nil, ErrNoItems
	}

	return &domain.FeedResult{
		Title:       strings.TrimSpace(state.feedTitle.String()),
		Description: strings.TrimSpace(state.feedDescription.String()),
		Link:        strings.TrimSpace(state.feedLink.String()),
		Items:       state.items,
	}, nil
}

func (s *parseState) startElement(name string) {
	s.currentElement = name

	if name == "item" {
		s.insideItem = true
		s.itemTitle.Reset()
		s.itemDescription.Reset()
		s.itemLink.Reset()
		s.itemPubDate.Reset()
	}
}

func (s *parseState) text(chunk string) {
	switch s.currentElement {
	case "title":
		if s.insideItem {
			s.itemTitle.WriteString(chunk)
		} else {
			s.feedTitle.WriteString(chunk)
		}
	case "description":
		if s.insideItem {
			s.itemDescription.WriteString(chunk)
		} else {
			s.feedDescription.WriteString(chunk)
		}
	case "link":
		if s.insideItem {
			s.itemLink.WriteString(chunk)
		} else {
			s.feedLink.WriteString(chunk)
		}
	case "pubDate":
		if s.insideItem {
			s.itemPubDate.WriteString(chunk)
		}
	}
}

func (s *parseState) endElement(name, sourceName string) {
	if name == "item" {
		source := sourceName
		if source == "" {
			source = strings.TrimSpace(s.feedTitle.String())
		}

		s.items = append(s.items, domain.RawFeedEntry{
			Title:       strings.TrimSpace(s.itemTitle.String()),
			Description: strings.TrimSpace(s.itemDescription.String()),
			Link:        strings.TrimSpace(s.itemLink.String()),
			PubDate:     strings.TrimSpace(s.itemPubDate.String()),
			Source:      source,
		})
		s.insideItem = false
	}

	s.currentElement = ""
}
