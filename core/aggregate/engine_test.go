package aggregate

import (
	"testing"
	"time"

	"briefly-news-core/core/domain"
)

func entryAt(title, pubDate string) domain.RawFeedEntry {
	return domain.RawFeedEntry{
		Title:       title,
		Description: "<p>" + title + " description</p>",
		Link:        "https://example.com/" + title,
		PubDate:     pubDate,
		Source:      "Test Source",
	}
}

func TestAggregate_SortsByDescendingTimestamp(t *testing.T) {
	// Interleaved timestamps across three sources.
	entries := []domain.RawFeedEntry{
		entryAt("old", "Mon, 06 Jan 2025 10:00:00 +0000"),
		entryAt("newest", "Mon, 06 Jan 2025 12:00:00 +0000"),
		entryAt("middle", "Mon, 06 Jan 2025 11:00:00 +0000"),
	}

	items := NewEngine().Aggregate("technology", entries)

	if len(items) != 3 {
		t.Fatalf("Aggregate returned %d items, want 3", len(items))
	}
	if items[0].Title != "newest" || items[1].Title != "middle" || items[2].Title != "old" {
		t.Errorf("order = [%s, %s, %s], want [newest, middle, old]",
			items[0].Title, items[1].Title, items[2].Title)
	}
	for i := 0; i < len(items)-1; i++ {
		if items[i].Timestamp < items[i+1].Timestamp {
			t.Errorf("items[%d].Timestamp < items[%d].Timestamp", i, i+1)
		}
	}
}

func TestAggregate_OneItemPerEntryWithOnePoint(t *testing.T) {
	entries := []domain.RawFeedEntry{
		entryAt("a", "Mon, 06 Jan 2025 10:00:00 +0000"),
		entryAt("b", "Mon, 06 Jan 2025 11:00:00 +0000"),
	}

	items := NewEngine().Aggregate("technology", entries)

	if len(items) != 2 {
		t.Fatalf("Aggregate returned %d items, want 2", len(items))
	}
	for i, item := range items {
		if len(item.Points) != 1 {
			t.Errorf("items[%d] has %d points, want 1", i, len(item.Points))
		}
		if !item.IsValid() {
			t.Errorf("items[%d] failed validation", i)
		}
	}
}

func TestAggregate_TimestampMatchesFirstPoint(t *testing.T) {
	entries := []domain.RawFeedEntry{entryAt("a", "Mon, 06 Jan 2025 10:00:00 +0000")}

	items := NewEngine().Aggregate("technology", entries)

	want := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC).Unix()
	if items[0].Timestamp != want {
		t.Errorf("Timestamp = %d, want %d", items[0].Timestamp, want)
	}
	if items[0].Points[0].PublishedAt != "Mon, 06 Jan 2025 10:00:00 +0000" {
		t.Errorf("PublishedAt = %q, want verbatim original date string", items[0].Points[0].PublishedAt)
	}
}

func TestAggregate_CleansPointDescription(t *testing.T) {
	entries := []domain.RawFeedEntry{{
		Title:       "a",
		Description: "<b>bold</b> &amp; plain",
		Link:        "https://example.com/a",
		PubDate:     "Mon, 06 Jan 2025 10:00:00 +0000",
		Source:      "Test Source",
	}}

	items := NewEngine().Aggregate("technology", entries)

	if items[0].Points[0].Description != "bold & plain" {
		t.Errorf("Description = %q, want %q", items[0].Points[0].Description, "bold & plain")
	}
}

func TestAggregate_UnparseableDateFallsBackToNow(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	e := NewEngine()
	e.now = func() time.Time { return fixed }

	entries := []domain.RawFeedEntry{entryAt("a", "yesterday-ish")}
	items := e.Aggregate("technology", entries)

	if items[0].Timestamp != fixed.Unix() {
		t.Errorf("Timestamp = %d, want now (%d)", items[0].Timestamp, fixed.Unix())
	}
}

func TestAggregate_StableIDsAcrossFetches(t *testing.T) {
	entries := []domain.RawFeedEntry{entryAt("a", "Mon, 06 Jan 2025 10:00:00 +0000")}

	e := NewEngine()
	first := e.Aggregate("technology", entries)
	second := e.Aggregate("technology", entries)

	if first[0].NewsID == "" {
		t.Fatal("NewsID is empty")
	}
	if first[0].NewsID != second[0].NewsID {
		t.Errorf("NewsID changed across fetches: %q vs %q", first[0].NewsID, second[0].NewsID)
	}
}

func TestAggregate_DistinctEntriesGetDistinctIDs(t *testing.T) {
	entries := []domain.RawFeedEntry{
		entryAt("a", "Mon, 06 Jan 2025 10:00:00 +0000"),
		entryAt("b", "Mon, 06 Jan 2025 10:00:00 +0000"),
	}

	items := NewEngine().Aggregate("technology", entries)

	if items[0].NewsID == items[1].NewsID {
		t.Errorf("distinct entries share NewsID %q", items[0].NewsID)
	}
}

func TestAggregate_TiesKeepFetchOrder(t *testing.T) {
	entries := []domain.RawFeedEntry{
		entryAt("first", "Mon, 06 Jan 2025 10:00:00 +0000"),
		entryAt("second", "Mon, 06 Jan 2025 10:00:00 +0000"),
	}

	items := NewEngine().Aggregate("technology", entries)

	if items[0].Title != "first" || items[1].Title != "second" {
		t.Errorf("tie order = [%s, %s], want fetch order preserved", items[0].Title, items[1].Title)
	}
}

func TestAggregate_Empty(t *testing.T) {
	items := NewEngine().Aggregate("technology", nil)

	if len(items) != 0 {
		t.Errorf("Aggregate returned %d items, want 0", len(items))
	}
}
