package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vorsorge/pension-calculator/internal/domain"
)

// ETFCalculator projects a private ETF savings plan: no accumulation-phase
// subsidies, flat capital-gains tax on the realized gain at withdrawal,
// Sparerpauschbetrag granted once in the sale year, TER and spread as a
// continuous return drag, order and depot fees as direct deductions.
type ETFCalculator struct {
	assumptions domain.Assumptions
	params      domain.ETFParams
}

// NewETFCalculator builds the calculator from shared assumptions and
// product parameters. Use domain.DefaultETFParams for typical broker
// conditions.
func NewETFCalculator(assumptions domain.Assumptions, params domain.ETFParams) *ETFCalculator {
	return &ETFCalculator{assumptions: assumptions, params: params}
}

func (c *ETFCalculator) Name() string { return "ETF-Sparplan (privat)" }

// Calculate runs the projection. It fails only when the rebalancing count
// cannot be spaced across the horizon.
func (c *ETFCalculator) Calculate() (domain.InvestmentResult, error) {
	if c.params.RebalancingCount >= c.assumptions.Years && c.params.RebalancingCount > 0 {
		return domain.InvestmentResult{}, fmt.Errorf("%w: %d rebalancings over %d years",
			ErrRebalancingCount, c.params.RebalancingCount, c.assumptions.Years)
	}

	netReturn := c.params.AnnualReturn.Sub(c.params.TER).Sub(c.params.Spread)
	years := decimal.NewFromInt(int64(c.assumptions.Years))

	var (
		finalValue   decimal.Decimal
		yearlyValues []domain.YearValue
		totalPaid    decimal.Decimal
	)

	if c.assumptions.ContributionDynamics.IsPositive() {
		finalValue, yearlyValues, totalPaid = CompoundWithDynamics(
			c.assumptions.MonthlyContribution,
			c.assumptions.ContributionDynamics,
			c.assumptions.Years,
			netReturn,
			c.params.InitialInvestment,
		)
	} else {
		totalPaid = c.assumptions.MonthlyContribution.Mul(twelve).Mul(years).Add(c.params.InitialInvestment)

		if c.params.RebalancingCount > 0 {
			return c.calculateWithRebalancing(netReturn, totalPaid)
		}

		finalValue, yearlyValues = CompoundInterest(c.assumptions.MonthlyContribution, netReturn, c.assumptions.Years)

		if c.params.InitialInvestment.IsPositive() {
			// The lump sum pays the spread once on purchase, then compounds
			// separately at the net return.
			afterSpread := c.params.InitialInvestment.Mul(one.Sub(c.params.Spread))
			finalValue = finalValue.Add(compoundLumpSum(afterSpread, netReturn, c.assumptions.Years))
		}
	}

	// Order fees accrue per execution, depot fees per year; both come off
	// the gross terminal balance before taxation.
	totalOrderFees := c.params.OrderFee.Mul(twelve).Mul(years)
	if c.params.InitialInvestment.IsPositive() {
		totalOrderFees = totalOrderFees.Add(c.params.OrderFee)
	}
	totalDepotFees := c.params.DepotFeeYearly.Mul(years)
	finalValue = finalValue.Sub(totalOrderFees).Sub(totalDepotFees)

	// A terminal sale only has the sale year's allowance available; unused
	// allowances of prior years lapse.
	capitalGain := finalValue.Sub(totalPaid)
	taxableGain := decimal.Max(decimal.Zero, capitalGain.Sub(c.params.TaxAllowance))
	taxOnGains := taxableGain.Mul(c.params.CapitalGainsTax)
	finalValueAfterTax := finalValue.Sub(taxOnGains)

	totalCosts := c.noCostProjection().Sub(finalValue)

	return domain.InvestmentResult{
		Name:         c.Name(),
		TotalPaid:    totalPaid,
		GrossPaid:    totalPaid,
		TotalValue:   finalValueAfterTax,
		GrossValue:   finalValue,
		NetReturn:    netReturn,
		GrossReturn:  c.params.AnnualReturn,
		TotalCosts:   totalCosts,
		YearlyValues: yearlyValues,
	}, nil
}

// calculateWithRebalancing simulates the plan year by year with
// RebalancingCount full liquidation/reinvestment events spread evenly
// across the horizon. Each event realizes the unrealized gain, consumes the
// calendar year's remaining allowance, pays flat capital-gains tax on the
// rest, and loses a sell spread, a buy spread and an order fee before the
// funds continue compounding.
func (c *ETFCalculator) calculateWithRebalancing(netReturn, totalPaid decimal.Decimal) (domain.InvestmentResult, error) {
	interval := float64(c.assumptions.Years) / float64(c.params.RebalancingCount+1)
	rebalancingYears := make(map[int]bool, c.params.RebalancingCount)
	for i := 1; i <= c.params.RebalancingCount; i++ {
		rebalancingYears[int(interval*float64(i))] = true
	}

	monthlyGrowth := one.Add(netReturn.Div(twelve))

	balance := decimal.Zero
	investedCapital := decimal.Zero
	yearlyValues := make([]domain.YearValue, 0, c.assumptions.Years)

	if c.params.InitialInvestment.IsPositive() {
		investedCapital = c.params.InitialInvestment
		balance = c.params.InitialInvestment.Mul(one.Sub(c.params.Spread))
	}

	totalOrderFees := decimal.Zero
	totalDepotFees := decimal.Zero
	remainingAllowance := decimal.Zero

	for year := 1; year <= c.assumptions.Years; year++ {
		// The allowance resets at the start of each calendar year and is
		// shared between a mid-year event and a terminal sale in the same
		// year.
		remainingAllowance = c.params.TaxAllowance

		for month := 0; month < 12; month++ {
			balance = balance.Mul(monthlyGrowth).Add(c.assumptions.MonthlyContribution)
			investedCapital = investedCapital.Add(c.assumptions.MonthlyContribution)
			totalOrderFees = totalOrderFees.Add(c.params.OrderFee)
		}
		totalDepotFees = totalDepotFees.Add(c.params.DepotFeeYearly)

		if rebalancingYears[year] {
			currentGain := balance.Sub(investedCapital)
			taxableGain := decimal.Max(decimal.Zero, currentGain.Sub(remainingAllowance))
			taxes := taxableGain.Mul(c.params.CapitalGainsTax)

			usedAllowance := decimal.Min(currentGain, remainingAllowance)
			remainingAllowance = remainingAllowance.Sub(usedAllowance)

			sellSpreadCost := balance.Mul(c.params.Spread)
			balance = balance.Sub(taxes).Sub(sellSpreadCost)

			buySpreadCost := balance.Mul(c.params.Spread)
			balance = balance.Sub(buySpreadCost)

			totalOrderFees = totalOrderFees.Add(c.params.OrderFee)
			// Invested capital is unchanged: this is a reshuffle, not a new
			// contribution.
		}

		yearlyValues = append(yearlyValues, domain.YearValue{Year: year, Value: balance})
	}

	finalValue := balance.Sub(totalDepotFees).Sub(totalOrderFees)
	finalCapitalGain := finalValue.Sub(investedCapital)

	if !rebalancingYears[c.assumptions.Years] {
		remainingAllowance = c.params.TaxAllowance
	}
	finalTaxableGain := decimal.Max(decimal.Zero, finalCapitalGain.Sub(remainingAllowance))
	finalTax := finalTaxableGain.Mul(c.params.CapitalGainsTax)
	finalValueAfterTax := finalValue.Sub(finalTax)

	totalCosts := c.noCostProjection().Sub(finalValueAfterTax).Sub(finalTax)

	return domain.InvestmentResult{
		Name:         c.Name(),
		TotalPaid:    totalPaid,
		GrossPaid:    totalPaid,
		TotalValue:   finalValueAfterTax,
		GrossValue:   finalValue,
		NetReturn:    netReturn,
		GrossReturn:  c.params.AnnualReturn,
		TotalCosts:   totalCosts,
		YearlyValues: yearlyValues,
	}, nil
}

// noCostProjection is the counterfactual terminal value at the gross return
// with no TER, spread or fees, used to isolate what costs took.
func (c *ETFCalculator) noCostProjection() decimal.Decimal {
	withoutCosts, _ := CompoundInterest(c.assumptions.MonthlyContribution, c.params.AnnualReturn, c.assumptions.Years)
	if c.params.InitialInvestment.IsPositive() {
		withoutCosts = withoutCosts.Add(compoundLumpSum(c.params.InitialInvestment, c.params.AnnualReturn, c.assumptions.Years))
	}
	return withoutCosts
}
