package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/vorsorge/pension-calculator/internal/domain"
)

// riesterMinReturn keeps the compounding well-defined when the cost drag
// would push the net return non-positive. Documented business rule, not an
// error case.
var riesterMinReturn = decimal.NewFromFloat(0.001)

// RiesterCalculator projects a Riester pension: state allowances
// (Grundzulage + Kinderzulage) are invested together with the own
// contribution, a Günstigerprüfung grants any deduction benefit exceeding
// the allowances as an extra refund, and the full terminal balance is taxed
// at the retirement rate on payout.
type RiesterCalculator struct {
	assumptions domain.Assumptions
	params      domain.RiesterParams
}

func NewRiesterCalculator(assumptions domain.Assumptions, params domain.RiesterParams) *RiesterCalculator {
	// Statutory cap on the lump-sum split at payout.
	maxLump := decimal.NewFromInt(30)
	if params.LumpSumPercentage.GreaterThan(maxLump) {
		params.LumpSumPercentage = maxLump
	}
	return &RiesterCalculator{assumptions: assumptions, params: params}
}

func (c *RiesterCalculator) Name() string { return "Riester-Rente" }

// LumpSumFraction is the configured payout split (0..0.3) for downstream
// reporting; it does not feed into Calculate.
func (c *RiesterCalculator) LumpSumFraction() decimal.Decimal {
	return c.params.LumpSumPercentage.Div(hundred)
}

func (c *RiesterCalculator) Calculate() (domain.InvestmentResult, error) {
	netReturn := c.params.AnnualReturn.Sub(c.params.EffectiveCosts)
	if !netReturn.IsPositive() {
		netReturn = riesterMinReturn
	}

	years := decimal.NewFromInt(int64(c.assumptions.Years))
	yearlyContribution := c.assumptions.MonthlyContribution.Mul(twelve)
	yearlyAllowance := c.params.BasicAllowance.Add(c.params.ChildrenAllowance)

	// Günstigerprüfung: the deduction benefit only counts where it exceeds
	// the allowances; the allowances themselves are never reduced.
	deductibleAmount := decimal.Min(yearlyContribution, c.params.MaxDeductible)
	yearlyTaxBenefit := deductibleAmount.Mul(c.assumptions.PersonalTaxRate)
	additionalTaxBenefit := decimal.Max(decimal.Zero, yearlyTaxBenefit.Sub(yearlyAllowance))

	// Allowances are paid into the contract, so they compound. The extra
	// tax benefit is refunded outside the contract.
	monthlyWithAllowance := yearlyContribution.Add(yearlyAllowance).Div(twelve)

	finalValueGross, yearlyValues := CompoundInterest(monthlyWithAllowance, netReturn, c.assumptions.Years)

	grossPaid := yearlyContribution.Mul(years)
	totalAllowances := yearlyAllowance.Mul(years)
	totalAdditionalTax := additionalTaxBenefit.Mul(years)

	withoutCosts, _ := CompoundInterest(monthlyWithAllowance, c.params.AnnualReturn, c.assumptions.Years)
	totalCosts := withoutCosts.Sub(finalValueGross)

	taxOnPayout := finalValueGross.Mul(c.assumptions.RetirementTaxRate)
	// The allowances already sit inside the balance; only the additional
	// refund is added back.
	finalValueAfterTax := finalValueGross.Sub(taxOnPayout).Add(totalAdditionalTax)

	netInvestment := grossPaid.Sub(totalAdditionalTax)

	return domain.InvestmentResult{
		Name:            c.Name(),
		TotalPaid:       netInvestment,
		GrossPaid:       grossPaid,
		StateAllowances: totalAllowances,
		TaxSavings:      totalAdditionalTax,
		TaxBenefit:      totalAllowances.Add(totalAdditionalTax),
		TotalValue:      finalValueAfterTax,
		GrossValue:      finalValueGross,
		NetReturn:       netReturn,
		GrossReturn:     c.params.AnnualReturn,
		TotalCosts:      totalCosts,
		YearlyValues:    yearlyValues,
	}, nil
}
