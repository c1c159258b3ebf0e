package cmd

import (
	"fmt"

	"github.com/theirongolddev/cryptosave/internal/cli"

	"github.com/spf13/cobra"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show the investment tiers",
	RunE:  runTiers,
}

func init() {
	rootCmd.AddCommand(tiersCmd)
}

func runTiers(_ *cobra.Command, _ []string) error {
	fmt.Println()
	fmt.Println(cli.RenderTitle("CRYPTOSAVE TIERS"))
	fmt.Println()
	fmt.Print(cli.RenderTiers())
	return nil
}
