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

func (a App) renderTiersTab(cw int) string {
	t := theme.Active
	tiers := config.Tiers()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	rateStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface).Bold(true)

	counts := make(map[int]int, len(tiers))
	for _, m := range a.state.Pool.Members {
		counts[m.Tier]++
	}

	widths := components.LayoutRow(cw, len(tiers))
	cards := make([]string, 0, len(tiers))
	for i, tier := range tiers {
		var body strings.Builder
		body.WriteString(labelStyle.Render("Investment:  ") + valueStyle.Render(cli.FormatNaira(tier.Amount)) + "\n")
		body.WriteString(labelStyle.Render("Weekly rate: ") + rateStyle.Render(cli.FormatRate(tier.Rate)) + "\n")
		body.WriteString(labelStyle.Render("Per week:    ") + valueStyle.Render(cli.FormatNaira(tier.WeeklyInterest(tier.Amount))) + "\n")
		body.WriteString(labelStyle.Render("Members:     ") + valueStyle.Render(fmt.Sprintf("%d", counts[tier.ID])))

		w := widths[i]
		if a.isCompactLayout() {
			w = cw
		}
		cards = append(cards, components.ContentCard(tier.Name, body.String(), w))
	}

	var b strings.Builder
	if a.isCompactLayout() {
		b.WriteString(strings.Join(cards, "\n"))
	} else {
		b.WriteString(components.CardRow(cards))
	}
	b.WriteString("\n")

	noteStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	b.WriteString(components.ContentCard("How it works",
		noteStyle.Render("Each tier takes one fixed deposit. Interest is simple: a member\n"+
			"earns the same amount every simulated week, up to 12 members in total."),
		cw))

	return b.String()
}
