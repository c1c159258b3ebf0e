// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/cryptosave/internal/config"
	"github.com/theirongolddev/cryptosave/internal/model"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatNaira formats a whole-unit amount with the currency symbol.
func FormatNaira(n int64) string {
	return model.FormatNaira(n)
}

// FormatRate renders a weekly fraction as a percentage without trailing zeros.
// e.g., 0.05 -> "5%", 0.125 -> "12.5%"
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).String() + "%"
}

// FormatWeek renders a simulated week number.
func FormatWeek(week int) string {
	return fmt.Sprintf("Week %d", week)
}

// TierOptionLabel is the selector label for a tier.
// e.g., "Tier 1 - ₦10,000 (5% weekly)"
func TierOptionLabel(t config.Tier) string {
	return fmt.Sprintf("%s - %s (%s weekly)", t.Name, FormatNaira(t.Amount), FormatRate(t.Rate))
}

// FormatMembers renders the member count against the cap, e.g. "3/12".
func FormatMembers(n int) string {
	return fmt.Sprintf("%d/%d", n, config.MaxMembers)
}
