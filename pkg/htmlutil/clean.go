// ABOUTME: HTML cleaning for feed descriptions shown as plain text
// ABOUTME: Strips tags before decoding entities so attribute values never leak into output

package htmlutil

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// entityReplacements are applied in order after tag stripping. The amp
// entity is decoded before lt/gt/quot so double-encoded markup reduces
// the same way the original client reduced it.
var entityReplacements = []struct {
	entity  string
	replace string
}{
	{"&nbsp;", " "},
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", "\""},
}

// CleanDescription turns an HTML-bearing feed description into plain
// readable text: tags are removed first, then the fixed entity set is
// decoded, then surrounding whitespace is trimmed.
func CleanDescription(description string) string {
	text := tagPattern.ReplaceAllString(description, "")

	for _, r := range entityReplacements {
		text = strings.ReplaceAll(text, r.entity, r.replace)
	}

	return strings.TrimSpace(text)
}
