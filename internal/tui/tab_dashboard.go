package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/cryptosave/internal/cli"
	"github.com/theirongolddev/cryptosave/internal/config"
	"github.com/theirongolddev/cryptosave/internal/tui/components"
	"github.com/theirongolddev/cryptosave/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderDashboardTab(cw int) string {
	p := a.state.Pool
	totals := p.Totals()
	var b strings.Builder

	// Row 1: Metric cards
	cards := []components.Metric{
		{Label: "Total Savings", Value: cli.FormatNaira(totals.Savings), Note: "Initial: " + cli.FormatNaira(totals.InitialSavings)},
		{Label: "Total Interest", Value: cli.FormatNaira(totals.Interest), Note: "Accumulated so far"},
		{Label: "Active Members", Value: cli.FormatNumber(int64(totals.Members)), Note: fmt.Sprintf("Out of %d maximum", config.MaxMembers)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Actions
	b.WriteString(a.renderActions(cw))
	b.WriteString("\n")

	// Row 3: Add-member form
	if a.state.FormOpen {
		b.WriteString(a.renderForm(cw))
		b.WriteString("\n")
	}

	// Row 4: Members, with the savings trend beside it when wide
	switch {
	case len(a.trend) < 2:
		b.WriteString(a.renderMembersCard(cw))
	case a.isCompactLayout():
		b.WriteString(a.renderMembersCard(cw))
		b.WriteString("\n")
		b.WriteString(a.renderTrendCard(cw))
	default:
		widths := components.LayoutRow(cw, 3)
		b.WriteString(components.CardRow([]string{
			a.renderMembersCard(widths[0] + widths[1]),
			a.renderTrendCard(widths[2]),
		}))
	}

	return b.String()
}

func (a App) renderActions(cw int) string {
	t := theme.Active
	p := a.state.Pool

	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	disabledStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	action := func(key, desc string, enabled bool) string {
		if !enabled {
			return disabledStyle.Render("[" + key + "] " + desc)
		}
		return keyStyle.Render("["+key+"]") + descStyle.Render(" "+desc)
	}

	addLabel := "Add Member"
	if !p.CanAdd() {
		addLabel = "Pool Full"
	}
	autoLabel := "Auto-advance: off"
	if a.autoAdvance {
		autoLabel = fmt.Sprintf("Auto-advance: every %ds", int(a.interval.Seconds()))
	}

	sep := spaceStyle.Render("   ")
	actions := action("a", addLabel, p.CanAdd() || a.state.FormOpen) + sep +
		action("n", "Simulate Week", p.CanAdvance()) + sep +
		action("w", "Withdraw", p.Len() > 0) + sep +
		action("A", autoLabel, true)

	innerW := components.CardInnerWidth(cw)
	capacity := components.CapacityBar("Members", p.Len(), config.MaxMembers, min(innerW, 40))

	return components.ContentCard("", actions+"\n"+capacity, cw)
}

func (a App) renderMembersCard(cw int) string {
	t := theme.Active
	members := a.state.Pool.Members

	if len(members) == 0 {
		mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		return components.ContentCard("Members",
			mutedStyle.Render("No members yet. Press [a] to add the first member."), cw)
	}

	innerW := components.CardInnerWidth(cw)
	const amountW = 12
	tierW := 7
	amountCols := 4
	if a.isCompactLayout() {
		amountCols = 3 // drop Initial
	}
	nameW := innerW - tierW - amountCols*(amountW+1) - 3
	if nameW < 10 {
		nameW = 10
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	gainStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)

	headers := []string{"Initial", "Current", "Weekly", "Total Int."}
	if amountCols == 3 {
		headers = headers[1:]
	}

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("  %-*s %-*s", nameW, "Name", tierW, "Tier")))
	for _, h := range headers {
		body.WriteString(headerStyle.Render(fmt.Sprintf(" %*s", amountW, h)))
	}
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(strings.Repeat("─", nameW+tierW+amountCols*(amountW+1)+3)))
	body.WriteString("\n")

	for i, m := range members {
		amounts := []int64{m.InitialAmount, m.CurrentAmount, m.WeeklyInterest, m.InterestToDate()}
		if amountCols == 3 {
			amounts = amounts[1:]
		}

		if i == a.cursor {
			var row strings.Builder
			fmt.Fprintf(&row, "▸ %-*s %-*s", nameW, truncStr(m.Name, nameW), tierW, fmt.Sprintf("Tier %d", m.Tier))
			for _, v := range amounts {
				fmt.Fprintf(&row, " %*s", amountW, cli.FormatNaira(v))
			}
			body.WriteString(selectedStyle.Render(row.String()))
			body.WriteString("\n")
			continue
		}

		body.WriteString(rowStyle.Render(fmt.Sprintf("  %-*s %-*s", nameW, truncStr(m.Name, nameW), tierW, fmt.Sprintf("Tier %d", m.Tier))))
		for j, v := range amounts {
			cell := fmt.Sprintf(" %*s", amountW, cli.FormatNaira(v))
			if j == len(amounts)-1 && v > 0 {
				body.WriteString(gainStyle.Render(cell))
			} else {
				body.WriteString(rowStyle.Render(cell))
			}
		}
		body.WriteString("\n")
	}
	body.WriteString(mutedStyle.Render("[j/k] select  [w] withdraw selected"))

	return components.ContentCard(fmt.Sprintf("Members (%s)", cli.FormatMembers(len(members))), body.String(), cw)
}

func (a App) renderTrendCard(cw int) string {
	t := theme.Active

	values := make([]float64, len(a.trend))
	labels := make([]string, len(a.trend))
	for i, pt := range a.trend {
		values[i] = float64(pt.savings)
		labels[i] = fmt.Sprintf("W%d", pt.week)
	}

	chart := components.BarChart(values, labels, t.Green, components.CardInnerWidth(cw), 8)
	return components.ContentCard("Savings by Week", chart, cw)
}
