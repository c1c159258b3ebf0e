package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cryptosave/internal/config"
	"github.com/theirongolddev/cryptosave/internal/model"
)

// Theme colors (Flexoki Dark)
var (
	ColorBg       = lipgloss.Color("#100F0F")
	ColorSurface  = lipgloss.Color("#1C1B1A")
	ColorBorder   = lipgloss.Color("#282726")
	ColorTextDim  = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText     = lipgloss.Color("#FFFCF0")
	ColorAccent   = lipgloss.Color("#3AA99F")
	ColorGreen    = lipgloss.Color("#879A39")
	ColorOrange   = lipgloss.Color("#DA702C")
	ColorRed      = lipgloss.Color("#D14D41")
	ColorBlue     = lipgloss.Color("#4385BE")
	ColorPurple   = lipgloss.Color("#8B7EC8")
	ColorYellow   = lipgloss.Color("#D0A215")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	gainStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	// Calculate column widths
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if w := lipgloss.Width(h); w > widths[i] {
				widths[i] = w
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols && lipgloss.Width(cell) > widths[i] {
					widths[i] = lipgloss.Width(cell)
				}
			}
		}
	}

	var b strings.Builder

	// Title above table if present
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	// Top border
	b.WriteString(dimStyle.Render("╭"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┬"))
		}
	}
	b.WriteString(dimStyle.Render("╮"))
	b.WriteString("\n")

	// Header row
	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			w := widths[i]
			padded := " " + padRight(h, w) + " "
			b.WriteString(headerStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")

		// Header separator
		b.WriteString(dimStyle.Render("├"))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("┼"))
			}
		}
		b.WriteString(dimStyle.Render("┤"))
		b.WriteString("\n")
	}

	// Data rows
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			// Separator row
			b.WriteString(dimStyle.Render("├"))
			for i, w := range widths {
				b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
				if i < numCols-1 {
					b.WriteString(dimStyle.Render("┼"))
				}
			}
			b.WriteString(dimStyle.Render("┤"))
			b.WriteString("\n")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			w := widths[i]
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align numeric columns (all except first)
			var padded string
			if i == 0 {
				padded = " " + padRight(cell, w) + " "
			} else {
				padded = " " + padLeft(cell, w) + " "
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	// Bottom border
	b.WriteString(dimStyle.Render("╰"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┴"))
		}
	}
	b.WriteString(dimStyle.Render("╯"))
	b.WriteString("\n")

	return b.String()
}

// RenderProgressBar renders a simple text progress bar.
func RenderProgressBar(current, total int, width int) string {
	if total <= 0 {
		return ""
	}

	pct := float64(current) / float64(total)
	if pct > 1 {
		pct = 1
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s",
		mutedStyle.Render(bar),
		FormatMembers(current),
	)
}

// RenderSparkline generates a unicode block sparkline from a series of values.
func RenderSparkline(values []int64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo

	var b strings.Builder
	for _, v := range values {
		idx := 0
		if span > 0 {
			idx = int((v - lo) * int64(len(blocks)-1) / span)
		}
		b.WriteRune(blocks[idx])
	}

	return b.String()
}

// RenderSummary renders the pool-level totals for the given week.
func RenderSummary(t model.Totals, week int) string {
	interest := FormatNaira(t.Interest)
	if t.Interest > 0 {
		interest = gainStyle.Render(interest)
	}

	rows := [][]string{
		{"Week", FormatNumber(int64(week))},
		{"Active Members", FormatMembers(t.Members)},
		{"---"},
		{"Total Savings", FormatNaira(t.Savings)},
		{"Initial", FormatNaira(t.InitialSavings)},
		{"Total Interest", interest},
	}
	return RenderTable(Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	})
}

// RenderMembers renders one row per member in pool order.
func RenderMembers(members []model.Member) string {
	if len(members) == 0 {
		return "  " + mutedStyle.Render("No members yet.") + "\n"
	}

	rows := make([][]string, 0, len(members))
	for _, m := range members {
		tierName := fmt.Sprintf("Tier %d", m.Tier)
		if t, ok := config.LookupTier(m.Tier); ok {
			tierName = t.Name
		}
		rows = append(rows, []string{
			m.Name,
			tierName,
			FormatNaira(m.InitialAmount),
			FormatNaira(m.CurrentAmount),
			FormatNaira(m.WeeklyInterest),
			FormatNaira(m.InterestToDate()),
		})
	}
	return RenderTable(Table{
		Title:   "Members",
		Headers: []string{"Name", "Tier", "Initial", "Current", "Weekly Interest", "Total Interest"},
		Rows:    rows,
	})
}

// RenderTiers renders the static tier table.
func RenderTiers() string {
	tiers := config.Tiers()
	rows := make([][]string, 0, len(tiers))
	for _, t := range tiers {
		rows = append(rows, []string{
			t.Name,
			FormatNaira(t.Amount),
			FormatRate(t.Rate),
			FormatNaira(t.WeeklyInterest(t.Amount)),
		})
	}
	return RenderTable(Table{
		Title:   "Tiers",
		Headers: []string{"Tier", "Investment", "Weekly Rate", "Weekly Interest"},
		Rows:    rows,
	})
}

// RenderEvents renders journal entries in the order given.
func RenderEvents(events []model.Event) string {
	if len(events) == 0 {
		return "  " + mutedStyle.Render("Journal is empty.") + "\n"
	}

	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			FormatNumber(e.Seq),
			FormatWeek(e.Week),
			EventLabel(e.Kind),
			e.MemberName,
			FormatNaira(e.Amount),
		})
	}
	return RenderTable(Table{
		Title:   "Journal",
		Headers: []string{"#", "Week", "Event", "Member", "Amount"},
		Rows:    rows,
	})
}

// RenderWarning renders a single highlighted warning line.
func RenderWarning(msg string) string {
	return "  " + warnStyle.Render(msg)
}

// EventLabel is the human-readable name of a journal event kind.
func EventLabel(k model.EventKind) string {
	switch k {
	case model.EventJoined:
		return "Joined"
	case model.EventWithdrew:
		return "Withdrew"
	case model.EventWeekAdvanced:
		return "Week advanced"
	default:
		return string(k)
	}
}

func padRight(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func padLeft(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}
