package utils

import (
	"github.com/shopspring/decimal"
)

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
)

// FormatWithPrecision formats an amount with the given precision
// Example: amount 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatCompactAmount renders an amount for dashboard cards.
// Example: 1234567 returns "1.2M", 15400 returns "15K", 812.5 returns "812.50"
func FormatCompactAmount(amount decimal.Decimal) string {
	abs := amount.Abs()
	switch {
	case abs.GreaterThanOrEqual(million):
		return amount.Div(million).StringFixed(1) + "M"
	case abs.GreaterThanOrEqual(thousand):
		return amount.Div(thousand).StringFixed(0) + "K"
	default:
		return amount.StringFixed(2)
	}
}
