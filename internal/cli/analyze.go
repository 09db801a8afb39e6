package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/futig/rfp-backend/internal/analyzer"
	"github.com/futig/rfp-backend/internal/entity"
	"github.com/futig/rfp-backend/internal/ingest"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newAnalyzeCmd(v *viper.Viper) *cobra.Command {
	var pages int
	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze an RFP document (.txt, .md, .html, .htm)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analysis, err := analyzeFile(cmd.Context(), args[0], pages)
			if err != nil {
				return err
			}
			return writeAnalysis(cmd.OutOrStdout(), v.GetString(keyFormat), filepath.Base(args[0]), analysis)
		},
	}
	cmd.Flags().IntVar(&pages, "pages", 0, "page count of the source document (estimated when 0)")
	return cmd
}

// analyzeFile reads a local text document and analyzes it. Binary formats need the extraction service.
func analyzeFile(ctx context.Context, path string, pages int) (*entity.RFPAnalysis, error) {
	if pages < 0 {
		return nil, fmt.Errorf("%w: --pages must not be negative", entity.ErrInvalidParameter)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	extracted, err := ingest.New(nil).Ingest(ctx, filepath.Base(path), content)
	if err != nil {
		if errors.Is(err, entity.ErrUnsupportedFormat) {
			return nil, fmt.Errorf("%w (rfpctl reads .txt, .md, .html and .htm; upload PDF/DOCX to the service)", err)
		}
		return nil, err
	}

	if pages == 0 {
		pages = extracted.PageCount
	}
	return analyzer.AnalyzeRFP(extracted.Text, analyzer.Metadata{PageCount: pages}), nil
}

func writeAnalysis(w io.Writer, format, name string, analysis *entity.RFPAnalysis) error {
	if format == formatJSON {
		return writeJSON(w, analysis)
	}
	return writeAnalysisText(w, name, analysis)
}
