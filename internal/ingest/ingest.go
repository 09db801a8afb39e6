// Package ingest turns uploaded RFP files into plain text for the analyzer.
package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/futig/rfp-backend/internal/entity"
)

// Extractor converts binary documents to text
type Extractor interface {
	Extract(ctx context.Context, filename string, content []byte) (*entity.ExtractionResult, error)
}

type Format string

const (
	FormatText   Format = "text"
	FormatHTML   Format = "html"
	FormatBinary Format = "binary"
)

var formats = map[string]Format{
	".txt":  FormatText,
	".md":   FormatText,
	".html": FormatHTML,
	".htm":  FormatHTML,
	".pdf":  FormatBinary,
	".docx": FormatBinary,
}

// DetectFormat resolves the format from the file extension
func DetectFormat(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	format, ok := formats[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", entity.ErrUnsupportedFormat, ext)
	}
	return format, nil
}

// Ingester dispatches uploads by format. extractor may be nil for local-only use.
type Ingester struct {
	extractor Extractor
}

func New(extractor Extractor) *Ingester {
	return &Ingester{extractor: extractor}
}

// Ingest returns the document text, failing with ErrEmptyDocument when none is recovered
func (i *Ingester) Ingest(ctx context.Context, filename string, content []byte) (*entity.ExtractionResult, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		return nil, err
	}

	var result *entity.ExtractionResult
	switch format {
	case FormatText:
		result = &entity.ExtractionResult{Text: decodeText(content)}
	case FormatHTML:
		text, err := HTMLText(decodeText(content))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", entity.ErrInvalidFile, filename, err)
		}
		result = &entity.ExtractionResult{Text: text}
	case FormatBinary:
		if i.extractor == nil {
			return nil, fmt.Errorf("%w: %s requires the extraction service", entity.ErrUnsupportedFormat, filepath.Ext(filename))
		}
		result, err = i.extractor.Extract(ctx, filename, content)
		if err != nil {
			return nil, err
		}
	}

	if strings.TrimSpace(result.Text) == "" {
		return nil, fmt.Errorf("%w: %s", entity.ErrEmptyDocument, filename)
	}

	return result, nil
}

func decodeText(content []byte) string {
	text := strings.ToValidUTF8(string(content), "\uFFFD")
	return strings.TrimPrefix(text, "\uFEFF")
}
