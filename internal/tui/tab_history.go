package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/cryptosave/internal/cli"
	"github.com/theirongolddev/cryptosave/internal/model"
	"github.com/theirongolddev/cryptosave/internal/tui/components"
	"github.com/theirongolddev/cryptosave/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderHistoryTab(cw, h int) string {
	t := theme.Active

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	if a.journal == nil {
		return components.ContentCard("History", mutedStyle.Render("Journal unavailable."), cw)
	}
	if len(a.history) == 0 {
		return components.ContentCard("History",
			mutedStyle.Render("No activity yet. Add a member or simulate a week."), cw)
	}

	innerW := components.CardInnerWidth(cw)
	const (
		seqW    = 5
		weekW   = 8
		kindW   = 14
		amountW = 12
		timeW   = 8
	)
	nameW := innerW - seqW - weekW - kindW - amountW - timeW - 5
	if nameW < 10 {
		nameW = 10
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	kindStyles := map[model.EventKind]lipgloss.Style{
		model.EventJoined:       lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface),
		model.EventWithdrew:     lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface),
		model.EventWeekAdvanced: lipgloss.NewStyle().Foreground(t.BlueBright).Background(t.Surface),
	}

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("%*s %-*s %-*s %-*s %*s %*s",
		seqW, "#", weekW, "Week", kindW, "Event", nameW, "Member", amountW, "Amount", timeW, "Time")))
	body.WriteString("\n")
	body.WriteString(dimStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")

	// Card chrome, header, and separator take 5 lines
	rows := h - 5
	if rows < 1 {
		rows = 1
	}
	events := a.history
	if len(events) > rows {
		events = events[:rows]
	}

	for _, e := range events {
		ks, ok := kindStyles[e.Kind]
		if !ok {
			ks = rowStyle
		}
		member := e.MemberName
		if member == "" {
			member = "-"
		}
		body.WriteString(dimStyle.Render(fmt.Sprintf("%*d ", seqW, e.Seq)))
		body.WriteString(rowStyle.Render(fmt.Sprintf("%-*s ", weekW, cli.FormatWeek(e.Week))))
		body.WriteString(ks.Render(fmt.Sprintf("%-*s ", kindW, cli.EventLabel(e.Kind))))
		body.WriteString(rowStyle.Render(fmt.Sprintf("%-*s ", nameW, truncStr(member, nameW))))
		body.WriteString(rowStyle.Render(fmt.Sprintf("%*s ", amountW, cli.FormatNaira(e.Amount))))
		body.WriteString(dimStyle.Render(fmt.Sprintf("%*s", timeW, e.At.Local().Format("15:04:05"))))
		body.WriteString("\n")
	}

	return components.ContentCard("History (newest first)", strings.TrimRight(body.String(), "\n"), cw)
}
