package analyzer

import (
	"strings"
	"unicode/utf8"
)

// extract applies every pattern of the rule over the document, keeping in-band matches once each
func (r listRule) extract(text string) []string {
	items := make([]string, 0)
	seen := make(map[string]struct{})
	for _, pattern := range r.patterns {
		for _, match := range pattern.FindAllString(text, -1) {
			item := strings.TrimSpace(match)
			if n := utf8.RuneCountInString(item); n < r.minLen || n > r.maxLen {
				continue
			}
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			items = append(items, item)
		}
	}
	return items
}
