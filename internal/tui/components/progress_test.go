package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cryptosave/internal/tui/theme"
)

func TestCapacityBar(t *testing.T) {
	bar := CapacityBar("Members", 3, 12, 40)
	if !strings.Contains(bar, "3/12") {
		t.Errorf("capacity bar missing count: %q", bar)
	}
	if w := lipgloss.Width(bar); w != 40 {
		t.Errorf("capacity bar width = %d, want 40", w)
	}
}

func TestProgressBar(t *testing.T) {
	bar := ProgressBar(6, 12, 8)
	if !strings.Contains(bar, "6/12") {
		t.Errorf("progress bar missing count: %q", bar)
	}
	if got := strings.Count(bar, "█"); got != 4 {
		t.Errorf("filled cells = %d, want 4", got)
	}
	if w := lipgloss.Width(bar); w != 8+1+len("6/12") {
		t.Errorf("progress bar width = %d", w)
	}

	full := ProgressBar(15, 12, 8)
	if strings.Contains(full, "░") {
		t.Errorf("overfull pool should fill the bar: %q", full)
	}
}

func TestStatusBarShowsPoolFill(t *testing.T) {
	bar := RenderStatusBar(100, StatusInfo{Week: 3, Members: 3, MaxMembers: 12, IntervalSec: 5})
	for _, want := range []string{"Week 3", "3/12", "█", "auto: off"} {
		if !strings.Contains(bar, want) {
			t.Errorf("status bar missing %q: %q", want, bar)
		}
	}
	if w := lipgloss.Width(bar); w != 100 {
		t.Errorf("status bar width = %d, want 100", w)
	}
}

func TestColorForPct(t *testing.T) {
	th := theme.Active
	if got := ColorForPct(1); got != string(th.Red) {
		t.Errorf("full pool color = %s, want red", got)
	}
	if got := ColorForPct(0.25); got != string(th.Green) {
		t.Errorf("quarter pool color = %s, want green", got)
	}
}

func TestBarChartLabels(t *testing.T) {
	out := BarChart([]float64{10_000, 10_500, 11_000}, []string{"W1", "W2", "W3"}, theme.Active.Green, 40, 6)
	if !strings.Contains(out, "₦") {
		t.Errorf("chart y-axis should use naira labels:\n%s", out)
	}
	if !strings.Contains(out, "W1") {
		t.Errorf("chart missing x labels:\n%s", out)
	}
}

func TestBarChartShowsRecentWeeks(t *testing.T) {
	values := make([]float64, 30)
	labels := make([]string, 30)
	for i := range values {
		values[i] = float64(10_000 + 500*i)
		labels[i] = fmt.Sprintf("W%d", i+1)
	}

	out := BarChart(values, labels, theme.Active.Green, 40, 6)
	if !strings.Contains(out, "W30") {
		t.Errorf("latest week should be shown:\n%s", out)
	}
	if strings.Contains(out, "W5") {
		t.Errorf("early weeks should scroll off:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 40 {
			t.Errorf("line width %d exceeds 40: %q", w, line)
		}
	}
}

func TestFormatChartLabel(t *testing.T) {
	cases := map[float64]string{
		10_000:    "₦10k",
		1_500_000: "₦1.5M",
		500:       "₦500",
	}
	for in, want := range cases {
		if got := formatChartLabel(in); got != want {
			t.Errorf("formatChartLabel(%v) = %q, want %q", in, got, want)
		}
	}
}
