package validator

import (
	"fmt"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/futig/rfp-backend/internal/config"
	"github.com/futig/rfp-backend/internal/entity"
	"github.com/google/uuid"
)

var AllowedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".html": true,
	".htm":  true,
	".pdf":  true,
	".docx": true,
}

// Validator validates requests and file uploads
type Validator struct {
	cfg config.FileUploadConfig
}

func New(cfg config.FileUploadConfig) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateUpload validates a single uploaded file
func (v *Validator) ValidateUpload(fh *multipart.FileHeader) error {
	if fh == nil {
		return fmt.Errorf("%w: file", entity.ErrMissingField)
	}
	return v.ValidateDocument(fh.Filename, fh.Size)
}

// ValidateDocument checks the extension and size of a document from any source
func (v *Validator) ValidateDocument(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !AllowedExtensions[ext] {
		return fmt.Errorf("%w: %q (allowed: txt, md, html, htm, pdf, docx)", entity.ErrUnsupportedFormat, ext)
	}

	if size == 0 {
		return fmt.Errorf("%w: file '%s' is empty", entity.ErrInvalidFile, filename)
	}

	if size > v.cfg.MaxFileSize {
		return fmt.Errorf("%w: file '%s' is %d bytes (max %d)", entity.ErrFileTooLarge, filename, size, v.cfg.MaxFileSize)
	}

	return nil
}

// ValidateID checks that id is a UUID
func ValidateID(field, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %s", entity.ErrMissingField, field)
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s must be a UUID", entity.ErrInvalidParameter, field)
	}
	return nil
}

// ValidateCallbackURL accepts absolute http(s) URLs only
func ValidateCallbackURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: callback_url", entity.ErrMissingField)
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: callback_url must be an absolute http(s) URL", entity.ErrInvalidFormat)
	}
	return nil
}

// SanitizeFilename sanitizes a filename for safe storage
func SanitizeFilename(filename string) string {
	filename = filepath.Base(filename)
	replacer := strings.NewReplacer(
		" ", "_",
		"(", "",
		")", "",
		"[", "",
		"]", "",
		"{", "",
		"}", "",
	)
	return replacer.Replace(filename)
}
