package analyzer

import (
	"reflect"
	"testing"

	"github.com/futig/rfp-backend/internal/entity"
)

func TestMatchHeader(t *testing.T) {
	tests := []struct {
		line      string
		wantTitle string
		wantOK    bool
	}{
		{"SECTION 1: Introduction", "Introduction", true},
		{"Part II - Technical Requirements", "Technical Requirements", true},
		{"Chapter 3", "Chapter 3", true},
		{"Executive Summary", "Executive Summary", true},
		{"4. Evaluation Criteria:", "Evaluation Criteria", true},
		{"SERVICE LEVEL AGREEMENT", "SERVICE LEVEL AGREEMENT", true},
		{"3. Project Governance and Reporting", "3. Project Governance and Reporting", true},
		{"B. Service Delivery Model", "B. Service Delivery Model", true},
		{"1. The vendor must provide references", "", false},
		{"Pricing is discussed later in this document", "", false},
		{"5. What Is Your Approach?", "", false},
		{"Part of the work includes testing", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			title, ok := matchHeader(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("Expected header=%v, got %v", tt.wantOK, ok)
			}
			if title != tt.wantTitle {
				t.Errorf("Expected title %q, got %q", tt.wantTitle, title)
			}
		})
	}
}

func TestClassifyType(t *testing.T) {
	tests := []struct {
		text string
		want entity.QuestionType
	}{
		{"Describe the cloud architecture you propose", entity.QuestionTypeTechnical},
		{"What is the price of the annual contract", entity.QuestionTypeCommercial},
		{"Do you hold an ISO certification", entity.QuestionTypeCompliance},
		{"List three comparable client engagements", entity.QuestionTypeExperience},
		{"When can you start the work", entity.QuestionTypeGeneral},
		// technical outranks commercial when both match
		{"What does the database cost", entity.QuestionTypeTechnical},
		{"Which licensing model do you offer", entity.QuestionTypeGeneral},
		{"Do you support single sign-on", entity.QuestionTypeGeneral},
	}

	for _, tt := range tests {
		if got := ClassifyType(tt.text); got != tt.want {
			t.Errorf("ClassifyType(%q): expected %s, got %s", tt.text, tt.want, got)
		}
	}
}

func TestAssessPriority(t *testing.T) {
	tests := []struct {
		text string
		want entity.Priority
	}{
		{"The vendor must be available on site", entity.PriorityHigh},
		{"A mandatory site visit is planned", entity.PriorityHigh},
		{"Bidders should describe their onboarding", entity.PriorityMedium},
		{"Preferred start date is June", entity.PriorityMedium},
		{"Tell us about your office locations", entity.PriorityLow},
	}

	for _, tt := range tests {
		if got := AssessPriority(tt.text); got != tt.want {
			t.Errorf("AssessPriority(%q): expected %s, got %s", tt.text, tt.want, got)
		}
	}
}

func TestRequiresAttention(t *testing.T) {
	if !RequiresAttention("How do you handle Data Protection requests?") {
		t.Error("Expected data protection to require attention")
	}
	if !RequiresAttention("Are you HIPAA ready?") {
		t.Error("Expected HIPAA to require attention")
	}
	if RequiresAttention("What colour is the logo?") {
		t.Error("Expected plain question not to require attention")
	}
}

func TestMatchKeywords(t *testing.T) {
	got := MatchKeywords("Share a Case Study of a cloud platform project and its cost")
	want := []string{"platform", "cloud", "cost", "case study", "project"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected keywords %v, got %v", want, got)
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize("  Title\r\nline  one\t\tstill\r\rnext\n\n\n\n\nlast  ")
	want := "Title\nline one still\n\nnext\n\nlast"

	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
