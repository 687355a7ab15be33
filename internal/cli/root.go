// Package cli provides the command-line interface for quran.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raphaelgruber/quran-mcp-go/internal/config"
	"github.com/raphaelgruber/quran-mcp-go/internal/quran"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	cfgFile      string
	envFlag      string
	languageFlag string

	// Global config and client
	cfg    config.Config
	client *quran.Client
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "quran",
	Short: "Query the Quran Foundation content API",
	Long: `Quran is a command-line client for the Quran Foundation content API.

Fetch verses with translations, tafsir and word-by-word breakdowns, and
browse the translation catalog. Credentials come from QURAN_CLIENT_ID /
QURAN_CLIENT_SECRET or a YAML config file.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip client setup for version and help commands
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.LoadWithFile(configPath())
		if err != nil {
			return err
		}

		// Flags win over env and file values.
		if envFlag != "" {
			cfg.Environment = envFlag
		}
		if languageFlag != "" {
			cfg.Language = languageFlag
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("missing credentials: %w", err)
		}

		client = quran.NewClient(quran.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Language:     cfg.Language,
			Environment:  quran.ParseEnvironment(cfg.Environment),
		})
		return nil
	},
}

// configPath returns the explicit --config path or the default location.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "quran", "config.yaml")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/quran/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "", "deployment environment: production or pre-production")
	rootCmd.PersistentFlags().StringVarP(&languageFlag, "language", "L", "", "response locale (default en)")

	rootCmd.AddCommand(verseCmd)
	rootCmd.AddCommand(translationsCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
