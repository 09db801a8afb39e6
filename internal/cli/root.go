// Package cli implements rfpctl, an offline front end to the analyzer and the proposal generator.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is overridden at build time with -ldflags "-X .../internal/cli.Version=..."
var Version = "dev"

const (
	formatText = "text"
	formatJSON = "json"

	keyFormat        = "format"
	keyKnowledgeBase = "knowledge_base"
)

// Execute runs the root command
func Execute() error {
	return NewRoot().Execute()
}

func NewRoot() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   "rfpctl",
		Short: "Analyze RFP documents and draft proposals from the command line",
		Long: `rfpctl analyzes RFP documents and drafts proposals without the HTTP service.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (RFPCTL_*)
3. Config file (~/.rfpctl/config.yaml)
4. Defaults`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}
			return validateFormat(v.GetString(keyFormat))
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.rfpctl/config.yaml)")
	root.PersistentFlags().StringP("format", "o", formatText, "output format: text or json")
	_ = v.BindPFlag(keyFormat, root.PersistentFlags().Lookup("format"))
	v.SetDefault(keyFormat, formatText)

	root.AddCommand(
		newAnalyzeCmd(v),
		newGenerateCmd(v),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rfpctl %s\n", Version)
		},
	}
}

// initConfig reads the config file, if any, and RFPCTL_* environment variables
func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".rfpctl"))
		}
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("RFPCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", format)
	}
}
