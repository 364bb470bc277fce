package domain

import (
	"github.com/shopspring/decimal"
)

// YearValue is a single point of a projected balance trajectory.
type YearValue struct {
	Year  int             `yaml:"year" json:"year"`
	Value decimal.Decimal `yaml:"value" json:"value"`
}

// InvestmentResult is the outcome of a single product projection. It is
// created once by a calculator and never mutated afterwards.
type InvestmentResult struct {
	Name string `yaml:"name" json:"name"`

	// TotalPaid is the net out-of-pocket contribution: gross contributions
	// minus tax refunds fed back during the accumulation phase. State
	// allowances are never part of it (they are paid by the state, not the
	// saver).
	TotalPaid decimal.Decimal `yaml:"total_paid" json:"total_paid"`

	// GrossPaid is the sum of contractual contributions before any
	// subsidy/refund netting.
	GrossPaid decimal.Decimal `yaml:"gross_paid" json:"gross_paid"`

	// StateAllowances is the total of direct government subsidies (Zulagen)
	// received over the horizon. Zero for unsubsidized products.
	StateAllowances decimal.Decimal `yaml:"state_allowances" json:"state_allowances"`

	// TaxSavings is the total of accumulation-phase tax refunds beyond the
	// allowances.
	TaxSavings decimal.Decimal `yaml:"tax_savings" json:"tax_savings"`

	// TaxBenefit is the combined state support: StateAllowances + TaxSavings.
	TaxBenefit decimal.Decimal `yaml:"tax_benefit" json:"tax_benefit"`

	// TotalValue is the projected value after withdrawal-time taxation.
	TotalValue decimal.Decimal `yaml:"total_value" json:"total_value"`

	// GrossValue is the projected value before withdrawal-time taxation but
	// after all fees. Can go negative when fees outrun contributions.
	GrossValue decimal.Decimal `yaml:"gross_value" json:"gross_value"`

	// NetReturn is the annualized return after running costs, GrossReturn
	// the one before.
	NetReturn   decimal.Decimal `yaml:"net_return" json:"net_return"`
	GrossReturn decimal.Decimal `yaml:"gross_return" json:"gross_return"`

	// TotalCosts is the cumulative effect of all fees over the horizon,
	// derived as the difference between a no-cost projection and the actual
	// one, plus any fixed fees.
	TotalCosts decimal.Decimal `yaml:"total_costs" json:"total_costs"`

	// YearlyValues holds one balance per elapsed year. Projections with
	// contribution dynamics carry an additional year-0 anchor entry.
	YearlyValues []YearValue `yaml:"yearly_values" json:"yearly_values"`
}

// Profit is the gain over the saver's own net outlay.
func (r InvestmentResult) Profit() decimal.Decimal {
	return r.TotalValue.Sub(r.TotalPaid)
}

// ReturnPercentage is Profit relative to TotalPaid, in percent. Zero when
// nothing was paid in.
func (r InvestmentResult) ReturnPercentage() decimal.Decimal {
	if r.TotalPaid.IsZero() {
		return decimal.Zero
	}
	return r.Profit().Div(r.TotalPaid).Mul(decimal.NewFromInt(100))
}

// NetInvestment is what actually left the saver's pocket:
// GrossPaid - StateAllowances - TaxSavings.
func (r InvestmentResult) NetInvestment() decimal.Decimal {
	return r.GrossPaid.Sub(r.StateAllowances).Sub(r.TaxSavings)
}

// YearWithdrawal is one row of a decumulation simulation.
type YearWithdrawal struct {
	Year       int             `yaml:"year" json:"year"`
	Withdrawal decimal.Decimal `yaml:"withdrawal" json:"withdrawal"`
	Capital    decimal.Decimal `yaml:"capital" json:"capital"`
}

// WithdrawalResult is the outcome of a decumulation strategy simulation.
type WithdrawalResult struct {
	StrategyName     string          `yaml:"strategy_name" json:"strategy_name"`
	InitialCapital   decimal.Decimal `yaml:"initial_capital" json:"initial_capital"`
	TotalWithdrawals decimal.Decimal `yaml:"total_withdrawals" json:"total_withdrawals"`
	RemainingCapital decimal.Decimal `yaml:"remaining_capital" json:"remaining_capital"`

	// YearlyWithdrawals carries one row per simulated year. The fixed
	// monthly pension strategy stops at depletion; the others pad
	// zero-withdrawal rows through the configured horizon.
	YearlyWithdrawals []YearWithdrawal `yaml:"yearly_withdrawals" json:"yearly_withdrawals"`

	// AvgMonthlyWithdrawal averages over the full nominal horizon; years
	// without payout still count.
	AvgMonthlyWithdrawal decimal.Decimal `yaml:"avg_monthly_withdrawal" json:"avg_monthly_withdrawal"`

	// CapitalDepletedYear is the first year the capital reached zero,
	// 0 when it never did within the horizon.
	CapitalDepletedYear int `yaml:"capital_depleted_year" json:"capital_depleted_year"`

	// SuccessRate is 1.0 when the capital lasted, otherwise
	// CapitalDepletedYear / withdrawal years.
	SuccessRate decimal.Decimal `yaml:"success_rate" json:"success_rate"`
}

// Report bundles everything a single plan run produced.
type Report struct {
	Results     []InvestmentResult `yaml:"results" json:"results"`
	Withdrawals []WithdrawalResult `yaml:"withdrawals,omitempty" json:"withdrawals,omitempty"`
}
