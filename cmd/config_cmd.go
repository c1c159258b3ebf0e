package cmd

import (
	"fmt"

	"github.com/theirongolddev/cryptosave/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Simulation]")
	fmt.Printf("    Auto advance:     %v\n", cfg.Simulation.AutoAdvance)
	fmt.Printf("    Seconds per week: %d\n", config.EffectiveAutoAdvanceSec(cfg.Simulation.AutoAdvanceSec))
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	fmt.Printf("    File:  %s\n", config.LogFile(cfg))
	fmt.Println()

	fmt.Println("  Run `cryptosave setup` to reconfigure.")
	return nil
}
