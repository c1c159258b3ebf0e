package components

import (
	"fmt"

	"github.com/theirongolddev/cryptosave/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StatusInfo is what the status bar reports about the running simulation.
type StatusInfo struct {
	Week        int
	Members     int
	MaxMembers  int
	AutoAdvance bool
	IntervalSec int
	Notice      string
}

const poolFillWidth = 6

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, info StatusInfo) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	accentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	noticeStyle := lipgloss.NewStyle().
		Foreground(t.Orange).
		Background(t.Surface)

	left := " [?]help  [q]uit"
	if info.Notice != "" {
		left += "  " + noticeStyle.Render(info.Notice)
	}

	auto := "auto: off"
	if info.AutoAdvance {
		auto = accentStyle.Render(fmt.Sprintf("auto: every %ds", info.IntervalSec))
	}
	right := fmt.Sprintf("Week %d  ", info.Week) +
		ProgressBar(info.Members, info.MaxMembers, poolFillWidth) + "  " +
		auto + " "

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
