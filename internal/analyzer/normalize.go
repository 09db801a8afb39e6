package analyzer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	blankRunPattern      = regexp.MustCompile(`\n{3,}`)
	whitespaceRunPattern = regexp.MustCompile(`[^\S\n]{2,}`)
)

// Normalize applies the lossy cleanup every rule runs against.
// Line endings become LF, blank runs shrink to one empty line, and runs of
// horizontal whitespace collapse to one space. Line breaks survive so headers stay on their own lines.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = blankRunPattern.ReplaceAllString(text, "\n\n")
	text = whitespaceRunPattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// EstimatePages returns the reported page count, or one page per charsPerPage characters of the raw text
func EstimatePages(text string, pageCount int) int {
	if pageCount > 0 {
		return pageCount
	}
	chars := utf8.RuneCountInString(text)
	return (chars + charsPerPage - 1) / charsPerPage
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
