package repository

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ParseTags splits a comma-separated tag input and normalizes the parts with
// NormalizeTags.
func ParseTags(raw string) []string {
	return NormalizeTags(strings.Split(raw, ","))
}

// NormalizeTags lowercases and trims each tag. Empty tags are discarded and
// repeated tags keep their first position. The result is never nil.
func NormalizeTags(raw []string) []string {
	// A Caser carries state, so each call gets its own.
	caser := cases.Lower(language.Spanish)
	tags := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, part := range raw {
		tag := caser.String(strings.TrimSpace(part))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}
