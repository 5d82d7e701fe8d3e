package gdscript

import (
	"strings"
)

// ExtractMetadata scans a docstring for `Tags:` and `Category:` lines,
// case-insensitively, and strips them from the returned description.
//
// Tags are comma-separated and whitespace-trimmed. The lines may appear
// anywhere and in any order; when the same key occurs on several lines the
// last occurrence wins, since each match assigns unconditionally.
func ExtractMetadata(description string) (desc string, tags []string, category string) {
	var kept []string
	for _, line := range strings.Split(description, "\n") {
		stripped := strings.ToLower(strings.TrimSpace(line))
		switch {
		case strings.HasPrefix(stripped, "tags:"):
			raw := line[strings.Index(line, ":")+1:]
			tags = nil
			for _, tag := range strings.Split(raw, ",") {
				tags = append(tags, strings.TrimSpace(tag))
			}
		case strings.HasPrefix(stripped, "category:"):
			category = strings.TrimSpace(line[strings.Index(line, ":")+1:])
		default:
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n"), tags, category
}
