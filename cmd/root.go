// Package cmd implements the cryptosave CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/theirongolddev/cryptosave/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagLogLevel string
	flagEnvFile  string
)

var rootCmd = &cobra.Command{
	Use:   "cryptosave",
	Short: "Savings pool simulator",
	Long: fmt.Sprintf("Simulate a savings pool of up to %d members across three fixed-rate tiers,\n"+
		"with simple weekly interest.", config.MaxMembers),
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Override the configured log level")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Environment file loaded before config")
}

// loadConfig is the shared config path used by all commands: .env first,
// then the config file, then flag overrides. It never fails; an unreadable
// config falls back to defaults with a warning.
func loadConfig() config.Config {
	if err := godotenv.Load(flagEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "  Could not read %s: %v\n", flagEnvFile, err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
		cfg = config.DefaultConfig()
	}

	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg
}
