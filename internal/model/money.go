package model

import "github.com/dustin/go-humanize"

// CurrencySymbol prefixes every rendered amount.
const CurrencySymbol = "₦"

// FormatNaira formats a whole-unit amount with the currency symbol.
// e.g., 30000 -> "₦30,000", -500 -> "-₦500"
func FormatNaira(n int64) string {
	if n < 0 {
		return "-" + CurrencySymbol + humanize.Comma(-n)
	}
	return CurrencySymbol + humanize.Comma(n)
}
