package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/vorsorge/pension-calculator/internal/domain"
)

// BasisrenteCalculator projects a Basisrente (Rürup): contributions are
// deductible at DeductiblePercentage of the personal tax rate and refunded
// immediately (the refund is not reinvested), while the entire terminal
// balance is taxed at the retirement rate on payout.
type BasisrenteCalculator struct {
	assumptions domain.Assumptions
	params      domain.BasisrenteParams
}

func NewBasisrenteCalculator(assumptions domain.Assumptions, params domain.BasisrenteParams) *BasisrenteCalculator {
	return &BasisrenteCalculator{assumptions: assumptions, params: params}
}

func (c *BasisrenteCalculator) Name() string { return "Basisrente (Rürup)" }

func (c *BasisrenteCalculator) Calculate() (domain.InvestmentResult, error) {
	netReturn := c.params.AnnualReturn.Sub(c.params.EffectiveCosts)
	years := decimal.NewFromInt(int64(c.assumptions.Years))

	var (
		finalValueGross       decimal.Decimal
		yearlyValues          []domain.YearValue
		contractContributions decimal.Decimal
	)

	if c.assumptions.ContributionDynamics.IsPositive() {
		finalValueGross, yearlyValues, contractContributions = CompoundWithDynamics(
			c.assumptions.MonthlyContribution,
			c.assumptions.ContributionDynamics,
			c.assumptions.Years,
			netReturn,
			c.params.InitialInvestment,
		)
	} else {
		finalValueGross, yearlyValues = CompoundInterest(c.assumptions.MonthlyContribution, netReturn, c.assumptions.Years)

		if c.params.InitialInvestment.IsPositive() {
			finalValueGross = finalValueGross.Add(compoundLumpSum(c.params.InitialInvestment, netReturn, c.assumptions.Years))
		}

		contractContributions = c.assumptions.MonthlyContribution.Mul(twelve).Mul(years).Add(c.params.InitialInvestment)
	}

	// Refund during the accumulation phase. It lowers the saver's net
	// outlay; it does not grow inside the contract.
	taxSavings := contractContributions.Mul(c.params.DeductiblePercentage).Mul(c.assumptions.PersonalTaxRate)

	withoutCosts, _ := CompoundInterest(c.assumptions.MonthlyContribution, c.params.AnnualReturn, c.assumptions.Years)
	if c.params.InitialInvestment.IsPositive() {
		withoutCosts = withoutCosts.Add(compoundLumpSum(c.params.InitialInvestment, c.params.AnnualReturn, c.assumptions.Years))
	}
	// The advisory fee is paid out of pocket, separate from the invested
	// contributions, so it shows up in the costs but not in the balance.
	totalCosts := withoutCosts.Sub(finalValueGross).Add(c.params.HonorarFee)

	// Nachgelagerte Besteuerung, simplified to the whole balance.
	taxOnPayout := finalValueGross.Mul(c.assumptions.RetirementTaxRate)
	finalValueAfterTax := finalValueGross.Sub(taxOnPayout).Add(taxSavings)

	netInvestment := contractContributions.Sub(taxSavings)

	return domain.InvestmentResult{
		Name:         c.Name(),
		TotalPaid:    netInvestment,
		GrossPaid:    contractContributions,
		TaxSavings:   taxSavings,
		TaxBenefit:   taxSavings,
		TotalValue:   finalValueAfterTax,
		GrossValue:   finalValueGross,
		NetReturn:    netReturn,
		GrossReturn:  c.params.AnnualReturn,
		TotalCosts:   totalCosts,
		YearlyValues: yearlyValues,
	}, nil
}
