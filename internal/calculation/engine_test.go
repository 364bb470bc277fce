package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vorsorge/pension-calculator/internal/domain"
)

func fullPlan() *domain.Plan {
	etf := domain.DefaultETFParams()
	basisrente := domain.DefaultBasisrenteParams()
	riester := domain.DefaultRiesterParams()
	privatrente := domain.DefaultPrivatrenteParams()

	return &domain.Plan{
		Assumptions: etfAssumptions(100, 10),
		ETF:         &etf,
		Basisrente:  &basisrente,
		Riester:     &riester,
		Privatrente: &privatrente,
	}
}

func TestEngineCalculatorsOrder(t *testing.T) {
	calculators := NewEngine().Calculators(fullPlan())

	require.Len(t, calculators, 4)
	assert.Equal(t, "ETF-Sparplan (privat)", calculators[0].Name())
	assert.Equal(t, "Basisrente (Rürup)", calculators[1].Name())
	assert.Equal(t, "Riester-Rente", calculators[2].Name())
	assert.Equal(t, "Privatrente (Verrentung)", calculators[3].Name())
}

func TestEngineCalculatorsSkipsUnconfigured(t *testing.T) {
	etf := domain.DefaultETFParams()
	plan := &domain.Plan{Assumptions: etfAssumptions(100, 10), ETF: &etf}

	calculators := NewEngine().Calculators(plan)

	require.Len(t, calculators, 1)
	assert.Equal(t, "ETF-Sparplan (privat)", calculators[0].Name())
}

func TestEngineRunPlan(t *testing.T) {
	report, err := NewEngine().RunPlan(fullPlan())
	require.NoError(t, err)

	require.Len(t, report.Results, 4)
	assert.Empty(t, report.Withdrawals)

	// Results stay in plan order; ranking is the formatter's job.
	assert.Equal(t, "ETF-Sparplan (privat)", report.Results[0].Name)
}

func TestEngineRunPlanResultConsistency(t *testing.T) {
	report, err := NewEngine().RunPlan(fullPlan())
	require.NoError(t, err)

	for _, r := range report.Results {
		expected := r.GrossPaid.Sub(r.StateAllowances).Sub(r.TaxSavings)
		assert.True(t, r.NetInvestment().Equal(expected), "%s net investment", r.Name)
		assert.True(t, r.TaxBenefit.Equal(r.StateAllowances.Add(r.TaxSavings)), "%s tax benefit", r.Name)
		assert.False(t, r.TaxSavings.IsNegative(), "%s tax savings", r.Name)
	}
}

func TestEngineRunPlanEmpty(t *testing.T) {
	_, err := NewEngine().RunPlan(&domain.Plan{Assumptions: etfAssumptions(100, 10)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no products")
}

func TestEngineRunPlanPropagatesCalculatorError(t *testing.T) {
	plan := fullPlan()
	plan.ETF.RebalancingCount = 99

	_, err := NewEngine().RunPlan(plan)
	require.ErrorIs(t, err, ErrRebalancingCount)
	assert.Contains(t, err.Error(), "ETF-Sparplan (privat)")
}

func TestEngineRunPlanWithWithdrawal(t *testing.T) {
	plan := fullPlan()
	withdrawal := domain.DefaultWithdrawalPlan()
	withdrawal.InitialCapital = decimal.NewFromInt(500000)
	plan.Withdrawal = &withdrawal

	report, err := NewEngine().RunPlan(plan)
	require.NoError(t, err)

	require.Len(t, report.Withdrawals, 1)
	assert.True(t, report.Withdrawals[0].InitialCapital.Equal(decimal.NewFromInt(500000)))
	assert.Len(t, report.Withdrawals[0].YearlyWithdrawals, 30)
}

func TestEngineRunPlanWithdrawalFromBestProduct(t *testing.T) {
	plan := fullPlan()
	withdrawal := domain.DefaultWithdrawalPlan()
	plan.Withdrawal = &withdrawal

	report, err := NewEngine().RunPlan(plan)
	require.NoError(t, err)

	best := NewComparison(report.Results).Best()
	require.Len(t, report.Withdrawals, 1)
	assert.True(t, report.Withdrawals[0].InitialCapital.Equal(best.TotalValue))
}

func TestEngineRunPlanUnknownStrategy(t *testing.T) {
	plan := fullPlan()
	plan.Withdrawal = &domain.WithdrawalPlan{
		Strategy:        "lottery",
		InitialCapital:  decimal.NewFromInt(100000),
		WithdrawalYears: 10,
	}

	_, err := NewEngine().RunPlan(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lottery")
}

func TestEngineSetLogger(t *testing.T) {
	engine := NewEngine()
	engine.SetLogger(nil)
	assert.NotNil(t, engine.Logger)

	engine.SetLogger(StdLogger{})
	assert.IsType(t, StdLogger{}, engine.Logger)
}
