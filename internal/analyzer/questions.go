package analyzer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/futig/rfp-backend/internal/entity"
)

// extractQuestions runs every question rule over a section's content, then the numbered pass.
// Candidates are deduplicated case-insensitively, ignoring leading enumeration; first occurrence wins.
func extractQuestions(section entity.RFPSection) []entity.RFPQuestion {
	questions := make([]entity.RFPQuestion, 0)
	seen := make(map[string]struct{})

	accept := func(candidate string) {
		candidate = strings.TrimSpace(candidate)
		if n := utf8.RuneCountInString(candidate); n < minQuestionLength || n > maxQuestionLength {
			return
		}
		key := dedupeKey(candidate)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		questions = append(questions, classify(
			fmt.Sprintf("%s-q-%d", section.ID, len(questions)+1),
			section.Title,
			candidate,
		))
	}

	for _, rule := range questionRules {
		for _, m := range rule.pattern.FindAllStringSubmatch(section.Content, -1) {
			accept(m[1])
		}
	}
	for _, m := range numberedQuestionPattern.FindAllStringSubmatch(section.Content, -1) {
		accept(m[1])
	}

	return questions
}

func dedupeKey(question string) string {
	key := strings.ToLower(strings.TrimSpace(question))
	return strings.TrimSpace(enumerationPrefix.ReplaceAllString(key, ""))
}

func classify(id, sectionTitle, text string) entity.RFPQuestion {
	lower := strings.ToLower(text)
	q := entity.RFPQuestion{
		ID:                id,
		Section:           sectionTitle,
		Question:          text,
		Type:              ClassifyType(lower),
		Priority:          AssessPriority(lower),
		Keywords:          MatchKeywords(lower),
		RequiresAttention: RequiresAttention(lower),
	}
	// compliance-sensitive compliance questions are never deferred
	if q.Type == entity.QuestionTypeCompliance && q.RequiresAttention {
		q.Priority = entity.PriorityHigh
	}
	return q
}

// ClassifyType returns the first vocabulary, in priority order, with a substring hit
func ClassifyType(text string) entity.QuestionType {
	lower := strings.ToLower(text)
	for _, v := range typeVocabularies {
		if containsAny(lower, v.keywords) {
			return v.questionType
		}
	}
	return entity.QuestionTypeGeneral
}

func AssessPriority(text string) entity.Priority {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, highPriorityWords):
		return entity.PriorityHigh
	case containsAny(lower, mediumPriorityWords):
		return entity.PriorityMedium
	default:
		return entity.PriorityLow
	}
}

// MatchKeywords returns every vocabulary keyword found in text, deduplicated, in vocabulary order
func MatchKeywords(text string) []string {
	lower := strings.ToLower(text)
	keywords := make([]string, 0)
	seen := make(map[string]struct{})
	for _, v := range typeVocabularies {
		for _, kw := range v.keywords {
			if _, ok := seen[kw]; ok {
				continue
			}
			if strings.Contains(lower, kw) {
				seen[kw] = struct{}{}
				keywords = append(keywords, kw)
			}
		}
	}
	return keywords
}

func RequiresAttention(text string) bool {
	return containsAny(strings.ToLower(text), attentionWords)
}
