package config

import "testing"

func TestLookupTier_FixedTable(t *testing.T) {
	tests := []struct {
		id       int
		name     string
		amount   int64
		rate     string
		interest int64
	}{
		{1, "Tier 1", 10_000, "0.05", 500},
		{2, "Tier 2", 20_000, "0.1", 2_000},
		{3, "Tier 3", 30_000, "0.2", 6_000},
	}

	for _, tt := range tests {
		tier, ok := LookupTier(tt.id)
		if !ok {
			t.Fatalf("LookupTier(%d) returned !ok", tt.id)
		}
		if tier.Name != tt.name {
			t.Errorf("tier %d name = %q, want %q", tt.id, tier.Name, tt.name)
		}
		if tier.Amount != tt.amount {
			t.Errorf("tier %d amount = %d, want %d", tt.id, tier.Amount, tt.amount)
		}
		if tier.Rate.String() != tt.rate {
			t.Errorf("tier %d rate = %s, want %s", tt.id, tier.Rate, tt.rate)
		}
		if got := tier.WeeklyInterest(tier.Amount); got != tt.interest {
			t.Errorf("tier %d weekly interest = %d, want %d", tt.id, got, tt.interest)
		}
	}
}

func TestLookupTier_Unknown(t *testing.T) {
	for _, id := range []int{0, 4, -1} {
		if _, ok := LookupTier(id); ok {
			t.Errorf("LookupTier(%d) returned ok for unknown tier", id)
		}
	}
}

func TestParseTierID(t *testing.T) {
	tests := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{"1", 1, true},
		{"2", 2, true},
		{" 3 ", 3, true},
		{"", 0, false},
		{"4", 0, false},
		{"01", 0, false},
		{"one", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseTierID(tt.raw)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseTierID(%q) = (%d, %v), want (%d, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestTiers_ReturnsCopy(t *testing.T) {
	tiers := Tiers()
	if len(tiers) != 3 {
		t.Fatalf("len(Tiers()) = %d, want 3", len(tiers))
	}
	tiers[0].Amount = 1

	tier, _ := LookupTier(1)
	if tier.Amount != 10_000 {
		t.Fatalf("mutating Tiers() result changed the table: amount = %d", tier.Amount)
	}
}
