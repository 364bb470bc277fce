package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/vorsorge/pension-calculator/internal/domain"
)

// ertragsanteilTable maps the age at annuity onset to the statutory taxable
// fraction of the payout in percent (§ 22 EStG).
var ertragsanteilTable = map[int]int{
	50: 30, 51: 29, 52: 28, 53: 27, 54: 27,
	55: 26, 56: 25, 57: 25, 58: 24, 59: 23,
	60: 22, 61: 22, 62: 21, 63: 20, 64: 19,
	65: 18, 66: 18, 67: 17, 68: 16, 69: 16,
	70: 15,
}

// PrivatrenteCalculator projects an unsubsidized private annuity. No
// accumulation-phase support; at payout either the half-income rule on the
// gain (lump sum) or Ertragsanteil taxation of the balance (annuity)
// applies.
type PrivatrenteCalculator struct {
	assumptions domain.Assumptions
	params      domain.PrivatrenteParams
}

func NewPrivatrenteCalculator(assumptions domain.Assumptions, params domain.PrivatrenteParams) *PrivatrenteCalculator {
	return &PrivatrenteCalculator{assumptions: assumptions, params: params}
}

func (c *PrivatrenteCalculator) Name() string {
	if c.params.PayoutOption == domain.PayoutLumpSum {
		return "Privatrente (Einmalauszahlung)"
	}
	return "Privatrente (Verrentung)"
}

func (c *PrivatrenteCalculator) Calculate() (domain.InvestmentResult, error) {
	netReturn := c.params.AnnualReturn.Sub(c.params.EffectiveCosts)
	years := decimal.NewFromInt(int64(c.assumptions.Years))

	finalValueGross, yearlyValues := CompoundInterest(c.assumptions.MonthlyContribution, netReturn, c.assumptions.Years)

	if c.params.InitialInvestment.IsPositive() {
		finalValueGross = finalValueGross.Add(compoundLumpSum(c.params.InitialInvestment, netReturn, c.assumptions.Years))
	}

	contractContributions := c.assumptions.MonthlyContribution.Mul(twelve).Mul(years).Add(c.params.InitialInvestment)

	withoutCosts, _ := CompoundInterest(c.assumptions.MonthlyContribution, c.params.AnnualReturn, c.assumptions.Years)
	if c.params.InitialInvestment.IsPositive() {
		withoutCosts = withoutCosts.Add(compoundLumpSum(c.params.InitialInvestment, c.params.AnnualReturn, c.assumptions.Years))
	}
	totalCosts := withoutCosts.Sub(finalValueGross).Add(c.params.HonorarFee)

	capitalGain := finalValueGross.Sub(contractContributions)

	var taxOnPayout decimal.Decimal
	if c.params.PayoutOption == domain.PayoutLumpSum {
		// Half-income rule: 50% of the gain taxable at the retirement rate,
		// assuming the statutory holding/age conditions are met.
		taxableGain := capitalGain.Mul(decimal.NewFromFloat(0.5))
		taxOnPayout = taxableGain.Mul(c.assumptions.RetirementTaxRate)
	} else {
		// Ertragsanteil taxation, applied to the full balance for
		// comparability with the other products instead of to an actual
		// periodic annuity.
		fraction := decimal.NewFromInt(int64(ertragsanteil(c.params.RetirementAge))).Div(hundred)
		taxOnPayout = finalValueGross.Mul(fraction).Mul(c.assumptions.RetirementTaxRate)
	}

	finalValueAfterTax := finalValueGross.Sub(taxOnPayout)

	return domain.InvestmentResult{
		Name:         c.Name(),
		TotalPaid:    contractContributions,
		GrossPaid:    contractContributions,
		TotalValue:   finalValueAfterTax,
		GrossValue:   finalValueGross,
		NetReturn:    netReturn,
		GrossReturn:  c.params.AnnualReturn,
		TotalCosts:   totalCosts,
		YearlyValues: yearlyValues,
	}, nil
}

// ertragsanteil returns the taxable percentage for an annuity starting at
// the given age, clamped to the table's endpoints. Unlisted in-range ages
// default to 18% (age 65).
func ertragsanteil(age int) int {
	switch {
	case age < 50:
		return 30
	case age > 70:
		return 15
	default:
		if pct, ok := ertragsanteilTable[age]; ok {
			return pct
		}
		return 18
	}
}
