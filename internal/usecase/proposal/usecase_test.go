package proposal

import (
	"context"
	"errors"
	"testing"

	"github.com/futig/rfp-backend/internal/analyzer"
	"github.com/futig/rfp-backend/internal/entity"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeProposalRepo struct {
	proposals map[string]*entity.Proposal
}

func (f *fakeProposalRepo) Create(ctx context.Context, p entity.Proposal) (*entity.Proposal, error) {
	f.proposals[p.ID] = &p
	return &p, nil
}

func (f *fakeProposalRepo) Get(ctx context.Context, id string) (*entity.Proposal, error) {
	p, ok := f.proposals[id]
	if !ok {
		return nil, entity.ErrProposalNotFound
	}
	return p, nil
}

func (f *fakeProposalRepo) ListByRFP(ctx context.Context, rfpID string) ([]*entity.Proposal, error) {
	var out []*entity.Proposal
	for _, p := range f.proposals {
		if p.RFPID == rfpID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProposalRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.proposals[id]; !ok {
		return entity.ErrProposalNotFound
	}
	delete(f.proposals, id)
	return nil
}

type fakeRFPRepo struct {
	docs map[string]*entity.RFPDocument
}

func (f *fakeRFPRepo) Get(ctx context.Context, id string) (*entity.RFPDocument, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, entity.ErrRFPNotFound
	}
	return doc, nil
}

type fakeKnowledgeRepo struct {
	items []*entity.KnowledgeBaseItem
	err   error
}

func (f *fakeKnowledgeRepo) ListActive(ctx context.Context) ([]*entity.KnowledgeBaseItem, error) {
	return f.items, f.err
}

const rfpText = `Technical Requirements
What is your approach to cloud platform security?
We require a detailed migration plan for all workloads.`

func setup(knowledge *fakeKnowledgeRepo) (*ProposalUsecase, *fakeProposalRepo, string) {
	docID := uuid.NewString()
	rfps := &fakeRFPRepo{docs: map[string]*entity.RFPDocument{
		docID: {ID: docID, Title: "RFP", Analysis: analyzer.AnalyzeRFP(rfpText, analyzer.Metadata{})},
	}}
	proposals := &fakeProposalRepo{proposals: make(map[string]*entity.Proposal)}
	return NewUsecase(proposals, rfps, knowledge, zap.NewNop()), proposals, docID
}

func TestCreate_GeneratesFromStoredAnalysis(t *testing.T) {
	knowledge := &fakeKnowledgeRepo{items: []*entity.KnowledgeBaseItem{{
		ID: "k1", Title: "Cloud platform security", Type: entity.KnowledgeTypeTechnicalSpec,
		Content: "We secure cloud platforms.", Tags: []string{"cloud", "security"}, IsActive: true,
	}}}
	uc, repo, docID := setup(knowledge)

	p, err := uc.Create(context.Background(), &entity.CreateProposalRequest{
		RFPID: docID, ProjectTitle: " Cloud Migration ", ClientName: "Acme",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.ProjectTitle != "Cloud Migration" {
		t.Errorf("Expected trimmed project title, got %q", p.ProjectTitle)
	}
	if p.Content.TotalQuestions != 2 {
		t.Errorf("Expected 2 total questions, got %d", p.Content.TotalQuestions)
	}
	if p.Content.CoveragePercentage() != 100 {
		t.Errorf("Expected full coverage, got %v", p.Content.CoveragePercentage())
	}
	if _, ok := repo.proposals[p.ID]; !ok {
		t.Error("Expected proposal to be stored")
	}
}

func TestCreate_UnknownRFP(t *testing.T) {
	uc, _, _ := setup(&fakeKnowledgeRepo{})
	_, err := uc.Create(context.Background(), &entity.CreateProposalRequest{
		RFPID: uuid.NewString(), ProjectTitle: "x", ClientName: "y",
	})
	if !errors.Is(err, entity.ErrRFPNotFound) {
		t.Errorf("Expected ErrRFPNotFound, got %v", err)
	}
}

func TestCreate_KnowledgeError(t *testing.T) {
	boom := errors.New("db down")
	uc, _, docID := setup(&fakeKnowledgeRepo{err: boom})
	_, err := uc.Create(context.Background(), &entity.CreateProposalRequest{
		RFPID: docID, ProjectTitle: "x", ClientName: "y",
	})
	if !errors.Is(err, boom) {
		t.Errorf("Expected wrapped db error, got %v", err)
	}
}

func TestGenerate_Stateless(t *testing.T) {
	uc, repo, _ := setup(&fakeKnowledgeRepo{})
	proposal := uc.Generate(context.Background(), &entity.GenerateRequest{
		Analysis:     &entity.RFPAnalysis{},
		ProjectTitle: "Empty",
		ClientName:   "Acme",
	})
	if proposal.CoveragePercentage() != 0 {
		t.Errorf("Expected 0 coverage for no questions, got %v", proposal.CoveragePercentage())
	}
	if len(proposal.Sections) != 3 {
		t.Errorf("Expected the 3 standard sections, got %d", len(proposal.Sections))
	}
	if len(repo.proposals) != 0 {
		t.Error("Expected nothing stored")
	}
}

func TestListByRFP(t *testing.T) {
	uc, _, docID := setup(&fakeKnowledgeRepo{})
	uc.Create(context.Background(), &entity.CreateProposalRequest{RFPID: docID, ProjectTitle: "a", ClientName: "b"})

	proposals, err := uc.ListByRFP(context.Background(), docID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(proposals) != 1 {
		t.Errorf("Expected 1 proposal, got %d", len(proposals))
	}

	if _, err := uc.ListByRFP(context.Background(), uuid.NewString()); !errors.Is(err, entity.ErrRFPNotFound) {
		t.Errorf("Expected ErrRFPNotFound, got %v", err)
	}
}

func TestGetAndDelete(t *testing.T) {
	uc, _, docID := setup(&fakeKnowledgeRepo{})
	p, _ := uc.Create(context.Background(), &entity.CreateProposalRequest{RFPID: docID, ProjectTitle: "a", ClientName: "b"})

	if _, err := uc.Get(context.Background(), p.ID); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if err := uc.Delete(context.Background(), p.ID); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if _, err := uc.Get(context.Background(), p.ID); !errors.Is(err, entity.ErrProposalNotFound) {
		t.Errorf("Expected ErrProposalNotFound, got %v", err)
	}
	if err := uc.Delete(context.Background(), "x"); !errors.Is(err, entity.ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter, got %v", err)
	}
}
