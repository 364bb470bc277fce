package output

import (
	"github.com/shopspring/decimal"

	money "github.com/vorsorge/pension-calculator/pkg/decimal"
)

// FormatCurrency formats a decimal as euro currency with 2 decimals. Kept
// here so it can be reused by multiple formatters and unit tested in
// isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.FromDecimal(amount).Format()
}

// FormatPercentage formats a decimal fraction as a percentage with 2
// decimals.
func FormatPercentage(fraction decimal.Decimal) string {
	return fraction.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
