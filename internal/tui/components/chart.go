package components

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/theirongolddev/cryptosave/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values, scaled between the
// series minimum and maximum so small weekly gains stay visible.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := 0
		if span > 0 {
			idx = int((v - lo) / span * float64(len(blocks)-1))
		}
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		buf.WriteRune(blocks[idx]) //nolint:gosec // bounds checked above
	}

	return style.Render(buf.String())
}

// Bar geometry for BarChart: each week gets a fixed-width column so week
// labels up to four characters sit under their bar.
const (
	barWidth = 4
	barGap   = 1
)

// BarChart renders savings per week as vertical bars with a naira y-axis.
// When more weeks are recorded than fit, the most recent ones are shown.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}

	t := theme.Active

	ceiling, step := chartScale(slices.Max(values), height)
	ticks := int(math.Round(ceiling / step))
	rowsPerTick := max(height/ticks, 1)
	chartH := rowsPerTick * ticks

	yLabelW := max(lipgloss.Width(formatChartLabel(ceiling))+1, 4)
	chartW := max(width-yLabelW-1, barWidth)

	if fit := max((chartW+barGap)/(barWidth+barGap), 1); len(values) > fit {
		values = values[len(values)-fit:]
		if len(labels) > fit {
			labels = labels[len(labels)-fit:]
		}
	}
	n := len(values)
	axisLen := n*barWidth + (n-1)*barGap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	blankStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		label := ""
		if row%rowsPerTick == 0 {
			label = formatChartLabel(step * float64(row/rowsPerTick))
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			if i > 0 {
				b.WriteString(blankStyle.Render(strings.Repeat(" ", barGap)))
			}
			cell := " "
			switch {
			case v >= rowTop:
				cell = "█"
			case v > rowBottom:
				idx := int((v - rowBottom) / (rowTop - rowBottom) * 8)
				cell = string(blocks[min(max(idx, 1), 8)])
			}
			b.WriteString(barStyle.Render(strings.Repeat(cell, barWidth)))
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", axisLen)))

	if len(labels) == n {
		buf := []byte(strings.Repeat(" ", axisLen))
		lastEnd := -1
		for i, lbl := range labels {
			pos := i * (barWidth + barGap)
			if pos <= lastEnd || pos+len(lbl) > axisLen {
				continue
			}
			copy(buf[pos:], lbl)
			lastEnd = pos + len(lbl)
		}
		b.WriteString("\n")
		b.WriteString(blankStyle.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render(strings.TrimRight(string(buf), " ")))
	}

	return b.String()
}

// chartScale picks a round tick step for maxVal and the axis ceiling, keeping
// at most one tick per two rows.
func chartScale(maxVal float64, height int) (ceiling, step float64) {
	if maxVal <= 0 {
		maxVal = 1
	}
	rough := maxVal / 5
	base := math.Pow(10, math.Floor(math.Log10(rough)))
	switch frac := rough / base; {
	case frac < 1.5:
		step = base
	case frac < 3.5:
		step = 2 * base
	default:
		step = 5 * base
	}

	maxTicks := max(height/2, 2)
	for math.Ceil(maxVal/step) > float64(maxTicks) {
		step *= 2
	}
	return math.Ceil(maxVal/step) * step, step
}

func formatChartLabel(v float64) string {
	return "₦" + compactAmount(v)
}

// compactAmount abbreviates whole-naira amounts: 10000 -> "10k", 1500000 -> "1.5M".
func compactAmount(v float64) string {
	switch {
	case v >= 1e6:
		return trimZeroDecimal(fmt.Sprintf("%.1f", v/1e6)) + "M"
	case v >= 1e3:
		return trimZeroDecimal(fmt.Sprintf("%.1f", v/1e3)) + "k"
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

func trimZeroDecimal(s string) string {
	return strings.TrimSuffix(s, ".0")
}
