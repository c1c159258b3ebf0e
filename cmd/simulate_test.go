package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/cryptosave/internal/model"
	"github.com/theirongolddev/cryptosave/internal/scenario"
)

func TestBuildScript_Flags(t *testing.T) {
	s, err := buildScript("", []string{"Ada:1", "Bo:3"}, 2)
	if err != nil {
		t.Fatalf("buildScript: %v", err)
	}
	if len(s.Steps) != 3 {
		t.Fatalf("got %d steps, want 3", len(s.Steps))
	}
	if s.Steps[1].Add.Name != "Bo" || s.Steps[1].Add.Tier != "3" {
		t.Errorf("second step = %+v", s.Steps[1].Add)
	}
	if *s.Steps[2].Advance != 2 {
		t.Errorf("advance = %d, want 2", *s.Steps[2].Advance)
	}
}

func TestBuildScript_AppendsAfterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	doc := "name: demo\nsteps:\n  - add: {name: Ada, tier: \"1\"}\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := buildScript(path, []string{"Bo:2"}, 0)
	if err != nil {
		t.Fatalf("buildScript: %v", err)
	}
	if s.Name != "demo" || len(s.Steps) != 2 || s.Steps[1].Add.Name != "Bo" {
		t.Errorf("script = %+v", s)
	}
}

func TestBuildScript_Errors(t *testing.T) {
	if _, err := buildScript("", []string{"Ada"}, 0); err == nil {
		t.Error("expected error for member without tier")
	}
	if _, err := buildScript("", nil, -1); !errors.Is(err, scenario.ErrNegativeAdvance) {
		t.Errorf("negative weeks err = %v", err)
	}
	if _, err := buildScript(filepath.Join(t.TempDir(), "missing.yaml"), nil, 0); err == nil {
		t.Error("expected error for missing scenario file")
	}
}

func TestSavingsTrend(t *testing.T) {
	events := []model.Event{
		{Seq: 6, Kind: model.EventWeekAdvanced, Amount: 31_000},
		{Seq: 5, Kind: model.EventJoined, Amount: 20_000},
		{Seq: 4, Kind: model.EventWeekAdvanced, Amount: 10_500},
		{Seq: 3, Kind: model.EventJoined, Amount: 10_000},
		{Seq: 2, Kind: model.EventWithdrew, Amount: 30_000},
		{Seq: 1, Kind: model.EventJoined, Amount: 30_000},
	}
	got := savingsTrend(events)
	want := []int64{10_000, 10_500, 31_000}
	if len(got) != len(want) {
		t.Fatalf("savingsTrend = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("savingsTrend = %v, want %v", got, want)
			break
		}
	}
}

func TestSavingsTrend_SingleWeekHasBaseline(t *testing.T) {
	events := []model.Event{
		{Seq: 2, Kind: model.EventWeekAdvanced, Amount: 10_500},
		{Seq: 1, Kind: model.EventJoined, Amount: 10_000},
	}
	if got := savingsTrend(events); len(got) != 2 || got[0] != 10_000 {
		t.Errorf("savingsTrend = %v, want [10000 10500]", got)
	}
	if got := savingsTrend(events[1:]); len(got) != 0 {
		t.Errorf("no advance should give no trend, got %v", got)
	}
}

func TestRenderRejected(t *testing.T) {
	out := renderRejected([]scenario.StepResult{
		{Index: 1, Kind: scenario.KindAdd, Member: "Ada"},
		{Index: 2, Kind: scenario.KindAdd, Errors: model.FieldErrors{
			model.FieldName: "Name is required",
			model.FieldTier: "Please select a tier",
		}},
		{Index: 3, Kind: scenario.KindWithdraw, Member: "Zed", Note: `no member named "Zed"`},
	})

	if !strings.Contains(out, "2 step(s) not applied") {
		t.Errorf("missing count:\n%s", out)
	}
	if !strings.Contains(out, "Name is required; Please select a tier") {
		t.Errorf("missing joined errors:\n%s", out)
	}
	if strings.Contains(out, "Ada") {
		t.Errorf("applied step should not be listed:\n%s", out)
	}
}
