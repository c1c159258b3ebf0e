package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/theirongolddev/cryptosave/internal/model"
)

func TestRenderTable_AlignsWideRunes(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Name", "Amount"},
		Rows: [][]string{
			{"Ada", "₦10,000"},
			{"Bo", "₦500"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), out)
	}
	want := lipgloss.Width(lines[0])
	for i, line := range lines {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("line %d width = %d, want %d: %q", i, w, want, line)
		}
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Errorf("RenderTable(empty) = %q, want empty", got)
	}
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(model.Totals{
		Savings:        32_000,
		InitialSavings: 30_000,
		Interest:       2_000,
		Members:        2,
	}, 2)

	for _, want := range []string{"₦32,000", "₦30,000", "₦2,000", "2/12", "Total Interest"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderMembers(t *testing.T) {
	members := []model.Member{{
		ID:             uuid.New(),
		Name:           "Ada",
		Tier:           3,
		InitialAmount:  30_000,
		CurrentAmount:  36_000,
		WeeklyInterest: 6_000,
	}}

	out := RenderMembers(members)
	for _, want := range []string{"Ada", "Tier 3", "₦30,000", "₦36,000", "₦6,000"} {
		if !strings.Contains(out, want) {
			t.Errorf("members missing %q:\n%s", want, out)
		}
	}

	if got := RenderMembers(nil); !strings.Contains(got, "No members yet.") {
		t.Errorf("empty members = %q", got)
	}
}

func TestRenderTiers(t *testing.T) {
	out := RenderTiers()
	for _, want := range []string{"Tier 1", "₦10,000", "5%", "₦500", "Tier 3", "20%", "₦6,000"} {
		if !strings.Contains(out, want) {
			t.Errorf("tiers missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEvents(t *testing.T) {
	out := RenderEvents([]model.Event{
		{Seq: 2, Week: 2, Kind: model.EventWeekAdvanced, Amount: 10_500},
		{Seq: 1, Week: 1, Kind: model.EventJoined, MemberName: "Ada", Amount: 10_000},
	})
	for _, want := range []string{"Week advanced", "Joined", "Ada", "₦10,500"} {
		if !strings.Contains(out, want) {
			t.Errorf("events missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("empty sparkline = %q", got)
	}
	if got := RenderSparkline([]int64{10_000, 10_500, 11_000}); got != "▁▄█" {
		t.Errorf("sparkline = %q, want %q", got, "▁▄█")
	}
	if got := RenderSparkline([]int64{5, 5}); got != "▁▁" {
		t.Errorf("flat sparkline = %q", got)
	}
}
