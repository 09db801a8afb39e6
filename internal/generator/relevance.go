package generator

import (
	"regexp"
	"slices"
	"strings"

	"github.com/futig/rfp-backend/internal/entity"
)

// Relevance weights. A keyword scores substringWeight when it occurs anywhere in the item,
// plus titleBonus when it occurs in the title and tagBonus when it occurs in any tag.
const (
	substringWeight = 1.0
	titleBonus      = 2.0
	tagBonus        = 1.5

	// sectionRelevanceThreshold is the score an item must exceed to back a section
	sectionRelevanceThreshold = 0.1
	maxSectionKnowledge       = 5
	maxAnswerKnowledge        = 3

	// confidencePerItem is added per backing item; a question saturates at 1.0
	confidencePerItem = 0.3
	maxConfidence     = 1.0
)

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

var titleStopwords = map[string]struct{}{
	"this": {}, "that": {}, "with": {}, "from": {}, "they": {}, "been": {}, "have": {},
	"were": {}, "said": {}, "each": {}, "which": {}, "their": {}, "time": {}, "will": {},
	"about": {}, "would": {}, "there": {}, "could": {}, "other": {},
}

// Relevance scores a knowledge item against keywords, normalized by the keyword count
func Relevance(item entity.KnowledgeBaseItem, keywords []string) float64 {
	text := strings.ToLower(item.Title + " " + item.Content + " " + strings.Join(item.Tags, " "))
	title := strings.ToLower(item.Title)

	var score float64
	for _, keyword := range keywords {
		kw := strings.ToLower(keyword)
		if kw == "" {
			continue
		}
		if strings.Contains(text, kw) {
			score += substringWeight
		}
		if strings.Contains(title, kw) {
			score += titleBonus
		}
		if slices.ContainsFunc(item.Tags, func(tag string) bool {
			return strings.Contains(strings.ToLower(tag), kw)
		}) {
			score += tagBonus
		}
	}

	return score / float64(max(len(keywords), 1))
}

type scoredItem struct {
	item  entity.KnowledgeBaseItem
	score float64
}

// rank returns items scoring above threshold, best first; ties keep input order
func rank(items []entity.KnowledgeBaseItem, keywords []string, threshold float64, limit int) []entity.KnowledgeBaseItem {
	scored := make([]scoredItem, 0, len(items))
	for _, item := range items {
		if s := Relevance(item, keywords); s > threshold {
			scored = append(scored, scoredItem{item: item, score: s})
		}
	}
	slices.SortStableFunc(scored, func(a, b scoredItem) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return 0
		}
	})
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}

	ranked := make([]entity.KnowledgeBaseItem, len(scored))
	for i, s := range scored {
		ranked[i] = s.item
	}
	return ranked
}

// titleKeywords splits a section title into lowercase words longer than three characters, minus stopwords
func titleKeywords(title string) []string {
	cleaned := nonWordPattern.ReplaceAllString(strings.ToLower(title), " ")

	var keywords []string
	seen := make(map[string]struct{})
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 3 {
			continue
		}
		if _, stop := titleStopwords[word]; stop {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		keywords = append(keywords, word)
	}
	return keywords
}

// sectionKeywords is the union of the title words and every question's keywords
func sectionKeywords(section entity.RFPSection) []string {
	keywords := titleKeywords(section.Title)
	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		seen[kw] = struct{}{}
	}
	for _, q := range section.Questions {
		for _, kw := range q.Keywords {
			if _, ok := seen[kw]; ok {
				continue
			}
			seen[kw] = struct{}{}
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// firstMatching returns the first item whose title, tags or content mention any keyword
func firstMatching(items []entity.KnowledgeBaseItem, keywords []string) (entity.KnowledgeBaseItem, bool) {
	for _, item := range items {
		title := strings.ToLower(item.Title)
		content := strings.ToLower(item.Content)
		for _, kw := range keywords {
			if strings.Contains(title, kw) || strings.Contains(content, kw) ||
				slices.ContainsFunc(item.Tags, func(tag string) bool { return strings.Contains(strings.ToLower(tag), kw) }) {
				return item, true
			}
		}
	}
	return entity.KnowledgeBaseItem{}, false
}

// excerpt returns the first n runes of the trimmed text, marking truncation with "..."
func excerpt(text string, n int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return strings.TrimSpace(string(runes[:n])) + "..."
}
