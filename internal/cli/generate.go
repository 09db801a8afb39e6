package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/futig/rfp-backend/internal/entity"
	"github.com/futig/rfp-backend/internal/generator"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type generateOptions struct {
	rfpFile           string
	projectTitle      string
	clientName        string
	additionalContext string
	pages             int
}

func newGenerateCmd(v *viper.Viper) *cobra.Command {
	var opts generateOptions
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Analyze an RFP and draft a proposal from a knowledge base file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(opts.projectTitle) == "" || strings.TrimSpace(opts.clientName) == "" {
				return fmt.Errorf("%w: --title and --client are required", entity.ErrMissingField)
			}

			analysis, err := analyzeFile(cmd.Context(), opts.rfpFile, opts.pages)
			if err != nil {
				return err
			}

			kbPath := v.GetString(keyKnowledgeBase)
			items, err := loadKnowledgeBase(kbPath)
			if err != nil {
				return err
			}

			proposal := generator.GenerateProposalFromRFP(
				analysis,
				items,
				strings.TrimSpace(opts.projectTitle),
				strings.TrimSpace(opts.clientName),
				opts.additionalContext,
			)
			return writeProposal(cmd.OutOrStdout(), v.GetString(keyFormat), proposal)
		},
	}

	cmd.Flags().StringVar(&opts.rfpFile, "rfp", "", "RFP document to analyze")
	cmd.Flags().String("kb", "", "knowledge base YAML file")
	cmd.Flags().StringVar(&opts.projectTitle, "title", "", "project title")
	cmd.Flags().StringVar(&opts.clientName, "client", "", "client name")
	cmd.Flags().StringVar(&opts.additionalContext, "context", "", "additional context for the executive summary")
	cmd.Flags().IntVar(&opts.pages, "pages", 0, "page count of the source document (estimated when 0)")
	_ = cmd.MarkFlagRequired("rfp")
	_ = v.BindPFlag(keyKnowledgeBase, cmd.Flags().Lookup("kb"))

	return cmd
}

func writeProposal(w io.Writer, format string, proposal *entity.GeneratedProposal) error {
	if format == formatJSON {
		return writeJSON(w, proposal)
	}
	return writeProposalText(w, proposal)
}
