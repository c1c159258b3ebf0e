package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/cryptosave/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a compact block bar of n out of capacity followed by
// the count, colored by how full the pool is.
func ProgressBar(n, capacity, width int) string {
	t := theme.Active

	pct := 0.0
	if capacity > 0 {
		pct = min(max(float64(n)/float64(capacity), 0), 1)
	}
	filled := int(pct * float64(width))

	barColor := lipgloss.Color(ColorForPct(pct))
	filledStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	countStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))

	return b.String() + spaceStyle.Render(" ") + countStyle.Render(fmt.Sprintf("%d/%d", n, capacity))
}

// ColorForPct returns green/yellow/orange/red based on how full the pool is.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 1:
		return string(t.Red)
	case pct >= 0.75:
		return string(t.Orange)
	case pct >= 0.5:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// CapacityBar renders a labeled membership bar such as "Members ███░░ 3/12".
func CapacityBar(label string, n, capacity, width int) string {
	t := theme.Active

	pct := 0.0
	if capacity > 0 {
		pct = float64(n) / float64(capacity)
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	count := fmt.Sprintf("%d/%d", n, capacity)
	barW := width - lipgloss.Width(label) - lipgloss.Width(count) - 2
	if barW < 4 {
		barW = 4
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForPct(pct)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForPct(pct))).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(label) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		countStyle.Render(count)
}
