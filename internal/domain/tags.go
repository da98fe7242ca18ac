package domain

import (
	"sort"
	"strings"
)

// NormalizeTags turns a raw comma-separated tag line into the canonical tag
// set: blank entries dropped, runs of whitespace inside a tag collapsed to
// single spaces, the result sorted and deduplicated. Use cases expect tags in
// this form; callers normalize before handing tags over.
func NormalizeTags(raw string) []string {
	parts := strings.Split(raw, ",")

	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.Join(strings.Fields(part), " ")
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}

	sort.Strings(tags)

	deduped := tags[:0]
	for i, tag := range tags {
		if i == 0 || tag != tags[i-1] {
			deduped = append(deduped, tag)
		}
	}
	if len(deduped) == 0 {
		return nil
	}
	return deduped
}
