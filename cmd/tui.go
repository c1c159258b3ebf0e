package cmd

import (
	"fmt"
	"io"

	"github.com/theirongolddev/cryptosave/internal/config"
	"github.com/theirongolddev/cryptosave/internal/logging"
	"github.com/theirongolddev/cryptosave/internal/store"
	"github.com/theirongolddev/cryptosave/internal/tui"
	"github.com/theirongolddev/cryptosave/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	// The dashboard owns the terminal; logs go to a file or nowhere
	closeLog, err := logging.SetupFile(cfg)
	if err != nil {
		logging.Setup(cfg, io.Discard)
	} else {
		defer closeLog()
	}

	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	var journal tui.Journal
	j, err := store.Open()
	if err != nil {
		log.WithError(err).Warn("journal unavailable, history disabled")
	} else {
		defer j.Close()
		journal = j
	}

	app := tui.NewApp(cfg, journal, !config.Exists())
	p := tea.NewProgram(app, tea.WithAltScreen())

	log.WithField("theme", cfg.Appearance.Theme).Info("starting dashboard")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
