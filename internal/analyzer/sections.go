package analyzer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/futig/rfp-backend/internal/entity"
)

const (
	generalSectionID    = "section-general"
	generalSectionTitle = "General Information"
	fallbackSectionID   = "section-all"
	fallbackTitle       = "Complete RFP Document"
)

// sectionBuilder accumulates lines for the section currently open
type sectionBuilder struct {
	section   entity.RFPSection
	firstLine int
	lastLine  int
	lines     []string
}

func (b *sectionBuilder) add(index int, line string) {
	b.lines = append(b.lines, line)
	b.lastLine = index
}

func (b *sectionBuilder) build() entity.RFPSection {
	s := b.section
	s.Content = strings.TrimSpace(strings.Join(b.lines, "\n"))
	s.PageNumbers = pageSpan(b.firstLine, b.lastLine)
	s.Questions = []entity.RFPQuestion{}
	return s
}

// extractSections splits normalized text into sections on header lines.
// Lines before the first header form the general section; a header with no lines under it is dropped.
func extractSections(text string) []entity.RFPSection {
	lines := strings.Split(text, "\n")
	sections := make([]entity.RFPSection, 0)

	var current *sectionBuilder
	closeCurrent := func() {
		if current != nil && len(current.lines) > 0 {
			sections = append(sections, current.build())
		}
	}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)

		if title, ok := matchHeader(line); ok {
			closeCurrent()
			current = &sectionBuilder{
				section: entity.RFPSection{
					ID:    fmt.Sprintf("section-%d", len(sections)+1),
					Title: title,
				},
				firstLine: i,
				lastLine:  i,
			}
			continue
		}

		if current == nil {
			current = &sectionBuilder{
				section:   entity.RFPSection{ID: generalSectionID, Title: generalSectionTitle},
				firstLine: i,
			}
		}
		current.add(i, line)
	}
	closeCurrent()

	if len(sections) == 0 {
		sections = append(sections, entity.RFPSection{
			ID:          fallbackSectionID,
			Title:       fallbackTitle,
			Content:     text,
			Questions:   []entity.RFPQuestion{},
			PageNumbers: pageSpan(0, len(lines)-1),
		})
	}

	return sections
}

// pageSpan lists every approximate page between two line indexes
func pageSpan(firstLine, lastLine int) []int {
	first := firstLine/linesPerPage + 1
	last := max(lastLine/linesPerPage+1, first)
	pages := make([]int, 0, last-first+1)
	for p := first; p <= last; p++ {
		pages = append(pages, p)
	}
	return pages
}

// matchHeader reports whether a trimmed line opens a new section and returns its title
func matchHeader(line string) (string, bool) {
	if line == "" || utf8.RuneCountInString(line) >= maxHeaderLength || strings.HasSuffix(line, "?") {
		return "", false
	}

	if m := explicitHeaderPattern.FindStringSubmatch(line); m != nil {
		if title := strings.TrimLeft(strings.TrimSpace(m[1]), "-:. "); title != "" {
			return title, true
		}
		return line, true
	}

	if name, ok := canonicalHeader(line); ok {
		return name, true
	}

	if (numberedHeaderPattern.MatchString(line) || letteredHeaderPattern.MatchString(line)) && isTitleCased(line) {
		return line, true
	}

	return "", false
}

// canonicalHeader matches a standalone canonical section name, optionally enumerated or followed by a colon
func canonicalHeader(line string) (string, bool) {
	name := enumerationPrefix.ReplaceAllString(line, "")
	name = strings.TrimSpace(strings.TrimSuffix(name, ":"))
	key := strings.ToLower(strings.Join(strings.Fields(name), " "))

	for _, canonical := range canonicalSections {
		if key == canonical {
			return name, true
		}
	}
	return "", false
}

// isTitleCased reports whether every word of four or more letters starts with an upper-case letter
func isTitleCased(line string) bool {
	for _, word := range strings.Fields(enumerationPrefix.ReplaceAllString(line, "")) {
		letters := 0
		first := rune(0)
		for _, r := range word {
			if unicode.IsLetter(r) {
				if letters == 0 {
					first = r
				}
				letters++
			}
		}
		if letters >= 4 && !unicode.IsUpper(first) {
			return false
		}
	}
	return true
}
