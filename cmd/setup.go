package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/cryptosave/internal/config"
	"github.com/theirongolddev/cryptosave/internal/tui"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	cfg, err := tui.RunSetup(cfg)
	if errors.Is(err, tui.ErrSetupAborted) {
		fmt.Println("  Setup cancelled, nothing saved.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Printf("  Theme: %s, auto-advance: %v every %ds\n",
		cfg.Appearance.Theme, cfg.Simulation.AutoAdvance, cfg.Simulation.AutoAdvanceSec)
	fmt.Println("  Run `cryptosave setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
