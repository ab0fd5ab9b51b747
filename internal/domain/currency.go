package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const rupee = "₹"

// Indian grouping: 20,00,000 rather than 2,000,000.
var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount in rupees with lakh/crore digit grouping and
// at most three fraction digits.
func FormatINR(amount decimal.Decimal) string {
	f, _ := amount.Round(3).Float64()
	return rupee + inrPrinter.Sprint(number.Decimal(f, number.MaxFractionDigits(3)))
}

// FormatBalance renders a remaining budget: the amount when it is zero or
// positive, "overspent by" the absolute amount otherwise.
func FormatBalance(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "overspent by " + FormatINR(amount.Abs())
	}

	return FormatINR(amount)
}
