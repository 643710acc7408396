package viewmodel

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatTotal formats a total with two decimals: ₹950.00, -₹50.00.
func FormatTotal(amount decimal.Decimal, currency string) string {
	if amount.IsNegative() {
		return "-" + currency + amount.Abs().StringFixed(2)
	}
	return currency + amount.StringFixed(2)
}

// FormatSigned formats a list amount with an explicit sign and without
// forced decimals: +₹1000, -₹49.99. Zero has no sign.
func FormatSigned(amount decimal.Decimal, currency string) string {
	switch amount.Sign() {
	case 1:
		return "+" + currency + amount.String()
	case -1:
		return "-" + currency + amount.Abs().String()
	default:
		return currency + "0"
	}
}

// FormatPercent formats a fraction in [0, 1] as a percentage with one decimal.
func FormatPercent(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}

// TruncateString truncates a string to the specified length with ellipsis.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
