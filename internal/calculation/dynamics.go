package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/vorsorge/pension-calculator/internal/domain"
)

// YearContribution is the monthly contribution in force during one year of
// the accumulation phase.
type YearContribution struct {
	Year          int
	MonthlyAmount decimal.Decimal
}

// PensionYear is one year of a dynamic pension payout, nominal and in
// purchasing power.
type PensionYear struct {
	Year    int
	Nominal decimal.Decimal
	Real    decimal.Decimal
}

// ContributionsWithDynamics lists the monthly contribution per year under a
// yearly escalation: initial * (1+rate)^(year-1).
func ContributionsWithDynamics(initialMonthly, dynamicsRate decimal.Decimal, years int) []YearContribution {
	contributions := make([]YearContribution, 0, years)
	growth := one.Add(dynamicsRate)

	for year := 1; year <= years; year++ {
		amount := initialMonthly.Mul(growth.Pow(decimal.NewFromInt(int64(year - 1))))
		contributions = append(contributions, YearContribution{Year: year, MonthlyAmount: amount})
	}

	return contributions
}

// CompoundWithDynamics compounds monthly contributions that grow by
// dynamicsRate at every year boundary (after the 12 months of the current
// year are simulated). The returned trajectory has years+1 entries; entry 0
// is the pre-simulation anchor holding the initial investment. Total
// contributions include the initial investment and every monthly payment.
func CompoundWithDynamics(initialMonthly, dynamicsRate decimal.Decimal, years int, annualReturn, initialInvestment decimal.Decimal) (decimal.Decimal, []domain.YearValue, decimal.Decimal) {
	monthlyGrowth := one.Add(annualReturn.Div(twelve))
	dynamicsGrowth := one.Add(dynamicsRate)

	capital := initialInvestment
	totalContributions := initialInvestment
	yearlyValues := make([]domain.YearValue, 0, years+1)
	yearlyValues = append(yearlyValues, domain.YearValue{Year: 0, Value: initialInvestment})

	monthly := initialMonthly
	for year := 1; year <= years; year++ {
		for month := 0; month < 12; month++ {
			capital = capital.Mul(monthlyGrowth).Add(monthly)
			totalContributions = totalContributions.Add(monthly)
		}
		yearlyValues = append(yearlyValues, domain.YearValue{Year: year, Value: capital})

		// Escalation takes effect the following year.
		monthly = monthly.Mul(dynamicsGrowth)
	}

	return capital, yearlyValues, totalContributions
}

// AdjustForInflation converts nominal values to purchasing power:
// real[i] = nominal[i] / (1+inflation)^i. Index 0 is unaffected.
func AdjustForInflation(nominalValues []decimal.Decimal, inflationRate decimal.Decimal) []decimal.Decimal {
	realValues := make([]decimal.Decimal, 0, len(nominalValues))
	growth := one.Add(inflationRate)

	for i, nominal := range nominalValues {
		divisor := growth.Pow(decimal.NewFromInt(int64(i)))
		realValues = append(realValues, nominal.Div(divisor))
	}

	return realValues
}

// RealReturn applies the Fisher equation: (1+nominal)/(1+inflation) - 1.
func RealReturn(nominalReturn, inflationRate decimal.Decimal) decimal.Decimal {
	return one.Add(nominalReturn).Div(one.Add(inflationRate)).Sub(one)
}

// PensionWithDynamics projects a monthly pension that grows by dynamicsRate
// per year (applied after the year is recorded) alongside its
// inflation-adjusted value, and returns the mean real monthly pension over
// the whole payout phase.
func PensionWithDynamics(initialMonthlyPension, dynamicsRate decimal.Decimal, years int, inflationRate decimal.Decimal) ([]PensionYear, decimal.Decimal) {
	pensionYears := make([]PensionYear, 0, years)
	dynamicsGrowth := one.Add(dynamicsRate)
	inflationGrowth := one.Add(inflationRate)

	current := initialMonthlyPension
	totalReal := decimal.Zero

	for year := 1; year <= years; year++ {
		real := current.Div(inflationGrowth.Pow(decimal.NewFromInt(int64(year))))
		pensionYears = append(pensionYears, PensionYear{Year: year, Nominal: current, Real: real})
		totalReal = totalReal.Add(real.Mul(twelve))

		current = current.Mul(dynamicsGrowth)
	}

	avgReal := totalReal.Div(decimal.NewFromInt(int64(years)).Mul(twelve))
	return pensionYears, avgReal
}

// RequiredCapitalWithDynamics is the present value of a growing annuity:
// each year's total pension payment discounted by (1+annualReturn)^year,
// the pension growing by pensionDynamics each subsequent year.
//
// inflationRate is accepted for interface symmetry with the other dynamics
// functions but is not part of the discounting formula.
func RequiredCapitalWithDynamics(initialMonthlyPension, pensionDynamics decimal.Decimal, withdrawalYears int, annualReturn, inflationRate decimal.Decimal) decimal.Decimal {
	_ = inflationRate

	presentValue := decimal.Zero
	current := initialMonthlyPension
	dynamicsGrowth := one.Add(pensionDynamics)
	discountGrowth := one.Add(annualReturn)

	for year := 1; year <= withdrawalYears; year++ {
		yearlyPension := current.Mul(twelve)
		discount := discountGrowth.Pow(decimal.NewFromInt(int64(year)))
		presentValue = presentValue.Add(yearlyPension.Div(discount))

		current = current.Mul(dynamicsGrowth)
	}

	return presentValue
}
