package entity

import (
	"encoding/json"
	"fmt"
)

// QuestionType is the mutually exclusive classification of an RFP question
type QuestionType string

const (
	QuestionTypeTechnical  QuestionType = "technical"
	QuestionTypeCommercial QuestionType = "commercial"
	QuestionTypeCompliance QuestionType = "compliance"
	QuestionTypeExperience QuestionType = "experience"
	QuestionTypeGeneral    QuestionType = "general"
)

// QuestionTypes lists every question type in reporting order
var QuestionTypes = []QuestionType{
	QuestionTypeTechnical,
	QuestionTypeCommercial,
	QuestionTypeCompliance,
	QuestionTypeExperience,
	QuestionTypeGeneral,
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// RFPQuestion is one extracted requirement or question
type RFPQuestion struct {
	ID                string       `json:"id"`
	Section           string       `json:"section"`
	Question          string       `json:"question"`
	Type              QuestionType `json:"type"`
	Priority          Priority     `json:"priority"`
	Keywords          []string     `json:"keywords"`
	RequiresAttention bool         `json:"requires_attention"`
}

// RFPSection is a contiguous span of the normalized document
type RFPSection struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Content     string        `json:"content"`
	Questions   []RFPQuestion `json:"questions"`
	PageNumbers []int         `json:"page_numbers"`
}

// RFPAnalysis is the structured result of analyzing an RFP document.
// The question total is derived from the sections and is only materialized on marshal.
type RFPAnalysis struct {
	TotalPages             int          `json:"total_pages"`
	Sections               []RFPSection `json:"sections"`
	KeyRequirements        []string     `json:"key_requirements"`
	TechnicalRequirements  []string     `json:"technical_requirements"`
	CommercialTerms        []string     `json:"commercial_terms"`
	ComplianceItems        []string     `json:"compliance_items"`
	Deadlines              []string     `json:"deadlines"`
	EvaluationCriteria     []string     `json:"evaluation_criteria"`
	SubmissionRequirements []string     `json:"submission_requirements"`
	Summary                string       `json:"summary"`
}

// TotalQuestions returns the number of questions across all sections
func (a RFPAnalysis) TotalQuestions() int {
	total := 0
	for _, s := range a.Sections {
		total += len(s.Questions)
	}
	return total
}

// Questions returns every question in document order
func (a RFPAnalysis) Questions() []RFPQuestion {
	questions := make([]RFPQuestion, 0, a.TotalQuestions())
	for _, s := range a.Sections {
		questions = append(questions, s.Questions...)
	}
	return questions
}

// CountByType returns the number of questions of each type
func (a RFPAnalysis) CountByType() map[QuestionType]int {
	counts := make(map[QuestionType]int, len(QuestionTypes))
	for _, s := range a.Sections {
		for _, q := range s.Questions {
			counts[q.Type]++
		}
	}
	return counts
}

// CountByPriority returns the number of questions with the given priority
func (a RFPAnalysis) CountByPriority(p Priority) int {
	count := 0
	for _, s := range a.Sections {
		for _, q := range s.Questions {
			if q.Priority == p {
				count++
			}
		}
	}
	return count
}

func (a RFPAnalysis) MarshalJSON() ([]byte, error) {
	type plain RFPAnalysis
	return json.Marshal(struct {
		plain
		TotalQuestions int `json:"total_questions"`
	}{
		plain:          plain(a),
		TotalQuestions: a.TotalQuestions(),
	})
}

// Validate checks the shape of an analysis received from outside the analyzer
func (a *RFPAnalysis) Validate() error {
	seen := make(map[string]struct{})
	for _, s := range a.Sections {
		if s.Title == "" {
			return fmt.Errorf("%w: section %q has an empty title", ErrInvalidAnalysis, s.ID)
		}
		for _, q := range s.Questions {
			if _, ok := seen[q.ID]; ok {
				return fmt.Errorf("%w: duplicate question id %q", ErrInvalidAnalysis, q.ID)
			}
			seen[q.ID] = struct{}{}
		}
	}
	return nil
}
