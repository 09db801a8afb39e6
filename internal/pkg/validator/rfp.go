package validator

import (
	"fmt"
	"strings"

	"github.com/futig/rfp-backend/internal/entity"
)

func (v *Validator) ValidateAnalyze(req *entity.AnalyzeRequest) error {
	if strings.TrimSpace(req.Text) == "" {
		return fmt.Errorf("%w: text", entity.ErrMissingField)
	}
	return v.validateText(req.Text, req.PageCount)
}

func (v *Validator) ValidateCreateRFP(req *entity.CreateRFPRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title", entity.ErrMissingField)
	}
	if strings.TrimSpace(req.Text) == "" {
		return fmt.Errorf("%w: text", entity.ErrMissingField)
	}
	return v.validateText(req.Text, req.PageCount)
}

func (v *Validator) ValidateUploadRFP(req *entity.UploadRFPRequest) error {
	if err := ValidateCallbackURL(req.CallbackURL); err != nil {
		return err
	}
	return v.ValidateUpload(req.File)
}

func (v *Validator) validateText(text string, pageCount int) error {
	if int64(len(text)) > v.cfg.MaxFileSize {
		return fmt.Errorf("%w: text is %d bytes (max %d)", entity.ErrFileTooLarge, len(text), v.cfg.MaxFileSize)
	}
	if pageCount < 0 {
		return fmt.Errorf("%w: page_count must not be negative", entity.ErrInvalidParameter)
	}
	return nil
}

func (v *Validator) ValidateGenerate(req *entity.GenerateRequest) error {
	if req.Analysis == nil {
		return fmt.Errorf("%w: analysis", entity.ErrMissingField)
	}
	if err := req.Analysis.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(req.ProjectTitle) == "" {
		return fmt.Errorf("%w: project_title", entity.ErrMissingField)
	}
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: client_name", entity.ErrMissingField)
	}
	for i := range req.KnowledgeItems {
		if err := req.KnowledgeItems[i].Type.Validate(); err != nil {
			return fmt.Errorf("knowledge_items[%d]: %w", i, err)
		}
	}
	return nil
}

func (v *Validator) ValidateCreateProposal(req *entity.CreateProposalRequest) error {
	if err := ValidateID("rfp_id", req.RFPID); err != nil {
		return err
	}
	if strings.TrimSpace(req.ProjectTitle) == "" {
		return fmt.Errorf("%w: project_title", entity.ErrMissingField)
	}
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: client_name", entity.ErrMissingField)
	}
	return nil
}
