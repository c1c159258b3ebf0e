package config

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxMembers caps the pool size.
const MaxMembers = 12

// Tier is one fixed (deposit amount, weekly interest rate) pair.
type Tier struct {
	ID     int
	Name   string
	Amount int64           // whole naira, no minor units
	Rate   decimal.Decimal // weekly fraction, e.g. 0.05
}

// WeeklyInterest returns amount × rate truncated to whole units.
func (t Tier) WeeklyInterest(amount int64) int64 {
	return decimal.NewFromInt(amount).Mul(t.Rate).IntPart()
}

// defaultTiers is ordered by ID; entries never change at runtime.
var defaultTiers = []Tier{
	{ID: 1, Name: "Tier 1", Amount: 10_000, Rate: decimal.RequireFromString("0.05")},
	{ID: 2, Name: "Tier 2", Amount: 20_000, Rate: decimal.RequireFromString("0.10")},
	{ID: 3, Name: "Tier 3", Amount: 30_000, Rate: decimal.RequireFromString("0.20")},
}

// Tiers returns all tiers ordered by ID.
func Tiers() []Tier {
	out := make([]Tier, len(defaultTiers))
	copy(out, defaultTiers)
	return out
}

// LookupTier returns the tier with the given ID.
// Returns a zero Tier and false if the ID is unknown.
func LookupTier(id int) (Tier, bool) {
	for _, t := range defaultTiers {
		if t.ID == id {
			return t, true
		}
	}
	return Tier{}, false
}

// ParseTierID accepts the selector values "1", "2" and "3".
// Anything else, including the empty string, counts as unset.
func ParseTierID(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	for _, t := range defaultTiers {
		if strconv.Itoa(t.ID) == raw {
			return t.ID, true
		}
	}
	return 0, false
}
