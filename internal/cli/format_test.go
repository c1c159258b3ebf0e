package cli

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/cryptosave/internal/config"
)

func TestFormatNaira(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "₦0"},
		{500, "₦500"},
		{10_000, "₦10,000"},
		{1_234_567, "₦1,234,567"},
		{-2_000, "-₦2,000"},
	}
	for _, tt := range tests {
		if got := FormatNaira(tt.in); got != tt.want {
			t.Errorf("FormatNaira(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.05", "5%"},
		{"0.10", "10%"},
		{"0.2", "20%"},
		{"0.125", "12.5%"},
	}
	for _, tt := range tests {
		if got := FormatRate(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("FormatRate(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTierOptionLabel(t *testing.T) {
	want := []string{
		"Tier 1 - ₦10,000 (5% weekly)",
		"Tier 2 - ₦20,000 (10% weekly)",
		"Tier 3 - ₦30,000 (20% weekly)",
	}
	for i, tier := range config.Tiers() {
		if got := TierOptionLabel(tier); got != want[i] {
			t.Errorf("TierOptionLabel(%d) = %q, want %q", tier.ID, got, want[i])
		}
	}
}

func TestFormatMembers(t *testing.T) {
	if got := FormatMembers(3); got != "3/12" {
		t.Errorf("FormatMembers(3) = %q, want 3/12", got)
	}
}
