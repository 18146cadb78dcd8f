package utils

import (
	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of decimal places used when showing prices
// and weights to users. Internal arithmetic keeps full precision; only the
// final display step is truncated.
const DisplayPrecision = 1

// FormatAmount formats an amount for display with a fixed single decimal
// place, e.g. 1016 -> "1016.0" and 2303.45892 -> "2303.5".
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(DisplayPrecision)
}

// FormatWithPrecision formats an amount with the given number of decimal
// places, padding with zeros.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
