// ABOUTME: Cursor pagination over the sorted digest item sequence of a category
// ABOUTME: Issues opaque page_N cursors valid only for the fetch session that produced them

package pagination

import (
	"fmt"
	"strconv"
	"strings"

	"briefly-news-core/core/domain"
)

// DefaultPageSize is the number of digest items per page.
const DefaultPageSize = 10

const cursorPrefix = "page_"

// Page is one slice of the sorted item sequence plus the cursor that
// fetches the slice after it. NextCursor is empty when the sequence is
// exhausted.
type Page struct {
	Items      []domain.DigestItem
	NextCursor string
}

// EncodeCursor builds the opaque cursor for a zero-based page index.
func EncodeCursor(page int) string {
	return fmt.Sprintf("%s%d", cursorPrefix, page)
}

// DecodeCursor parses an opaque cursor back into a page index. An empty
// cursor means page zero. Consumers never interpret cursors themselves;
// they only round-trip them through here.
func DecodeCursor(cursor string) (int, error) {
	if cursor == "" {
		return 0, nil
	}

	raw, ok := strings.CutPrefix(cursor, cursorPrefix)
	if !ok {
		return 0, fmt.Errorf("malformed cursor %q", cursor)
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		return 0, fmt.Errorf("malformed cursor %q", cursor)
	}

	return page, nil
}

// Slice returns the items of the given zero-based page. When the start
// offset is at or past the end of the sequence the page is empty and
// carries no next cursor, terminating "load more".
func Slice(items []domain.DigestItem, page, pageSize int) Page {
	if page < 0 {
		page = 0
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	start := page * pageSize
	if start >= len(items) {
		return Page{Items: []domain.DigestItem{}}
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	p := Page{Items: items[start:end]}
	if end < len(items) {
		p.NextCursor = EncodeCursor(page + 1)
	}

	return p
}
