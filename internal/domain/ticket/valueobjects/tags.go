package valueobjects

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	maxTags      = 20
	maxTagLength = 50
)

var tagFolder = cases.Lower(language.Und)

// NormalizeTags trims and lowercases tags, drops blanks and duplicates and
// keeps first-seen order. The result may be empty.
func NormalizeTags(raw []string) ([]string, error) {
	seen := make(map[string]struct{}, len(raw))
	tags := make([]string, 0, len(raw))
	for _, r := range raw {
		tag := tagFolder.String(strings.TrimSpace(r))
		if tag == "" {
			continue
		}
		if len([]rune(tag)) > maxTagLength {
			return nil, fmt.Errorf("tag %q exceeds maximum length of %d characters", tag, maxTagLength)
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	if len(tags) > maxTags {
		return nil, fmt.Errorf("a ticket can carry at most %d tags", maxTags)
	}
	return tags, nil
}

// NormalizeTag folds a single tag the same way NormalizeTags does.
func NormalizeTag(raw string) string {
	return tagFolder.String(strings.TrimSpace(raw))
}
