package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/vorsorge/pension-calculator/internal/domain"
)

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// CompoundInterest simulates month-by-month compounding of a constant
// monthly payment: balance = balance*(1+annualRate/12) + monthlyPayment.
// It returns the terminal balance and one snapshot per elapsed year, taken
// at the end of every 12th month. Zero payment and zero rate are valid
// degenerate inputs.
func CompoundInterest(monthlyPayment, annualRate decimal.Decimal, years int) (decimal.Decimal, []domain.YearValue) {
	monthlyGrowth := one.Add(annualRate.Div(twelve))
	months := years * 12

	balance := decimal.Zero
	yearlyValues := make([]domain.YearValue, 0, years)

	for month := 1; month <= months; month++ {
		balance = balance.Mul(monthlyGrowth).Add(monthlyPayment)
		if month%12 == 0 {
			yearlyValues = append(yearlyValues, domain.YearValue{Year: month / 12, Value: balance})
		}
	}

	return balance, yearlyValues
}

// compoundLumpSum grows a one-time amount over full years at an annual rate.
func compoundLumpSum(amount, annualRate decimal.Decimal, years int) decimal.Decimal {
	return amount.Mul(one.Add(annualRate).Pow(decimal.NewFromInt(int64(years))))
}
