package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFourPercentRule(t *testing.T) {
	result := FourPercentRule(decimal.NewFromInt(500000), 30, decimal.NewFromFloat(0.05), decimal.NewFromFloat(0.02), true)

	assert.Equal(t, "4%-Regel (Trinity Study)", result.StrategyName)
	require.Len(t, result.YearlyWithdrawals, 30)
	assert.Equal(t, 0, result.CapitalDepletedYear)
	assert.True(t, result.SuccessRate.Equal(one))

	// First year is the plain 4%, inflation kicks in from year two.
	assert.True(t, result.YearlyWithdrawals[0].Withdrawal.Equal(decimal.NewFromInt(20000)))
	assert.True(t, result.YearlyWithdrawals[1].Withdrawal.Equal(decimal.NewFromInt(20400)))

	assert.InDelta(t, 2253.78, result.AvgMonthlyWithdrawal.InexactFloat64(), 0.01)
	assert.InDelta(t, 403564.63, result.RemainingCapital.InexactFloat64(), 0.01)
}

func TestFourPercentRulePadsDepletedYears(t *testing.T) {
	// No growth: inflation-adjusted withdrawals exhaust the pot well before
	// the horizon, and the series keeps zero rows to the end.
	result := FourPercentRule(decimal.NewFromInt(100000), 50, decimal.Zero, decimal.NewFromFloat(0.02), true)

	require.Len(t, result.YearlyWithdrawals, 50)
	require.Greater(t, result.CapitalDepletedYear, 0)
	assert.True(t, result.RemainingCapital.IsZero())
	assert.True(t, result.SuccessRate.LessThan(one))

	last := result.YearlyWithdrawals[49]
	assert.Equal(t, 50, last.Year)
	assert.True(t, last.Withdrawal.IsZero())
	assert.True(t, last.Capital.IsZero())
}

func TestFourPercentRuleWithoutInflationAdjustment(t *testing.T) {
	result := FourPercentRule(decimal.NewFromInt(500000), 10, decimal.NewFromFloat(0.05), decimal.NewFromFloat(0.02), false)

	for _, row := range result.YearlyWithdrawals {
		assert.True(t, row.Withdrawal.Equal(decimal.NewFromInt(20000)), "year %d", row.Year)
	}
}

func TestDynamicPercentageWithdrawal(t *testing.T) {
	result := DynamicPercentageWithdrawal(decimal.NewFromInt(500000), decimal.NewFromFloat(0.04), 30, decimal.NewFromFloat(0.05))

	assert.Equal(t, "Dynamische Entnahme (4.0%)", result.StrategyName)
	require.Len(t, result.YearlyWithdrawals, 30)

	// A fraction of the remainder can never deplete the pot.
	assert.Equal(t, 0, result.CapitalDepletedYear)
	assert.True(t, result.SuccessRate.Equal(one))
	assert.True(t, result.RemainingCapital.IsPositive())

	assert.InDelta(t, 635017.90, result.RemainingCapital.InexactFloat64(), 0.01)
	assert.InDelta(t, 1875.25, result.AvgMonthlyWithdrawal.InexactFloat64(), 0.01)
}

func TestFixedMonthlyPensionSustainable(t *testing.T) {
	result := FixedMonthlyPension(decimal.NewFromInt(500000), decimal.NewFromInt(2000), 30, decimal.NewFromFloat(0.05))

	assert.Equal(t, "Feste Rente (2000 €/Monat)", result.StrategyName)
	require.Len(t, result.YearlyWithdrawals, 30)
	assert.Equal(t, 0, result.CapitalDepletedYear)
	assert.True(t, result.AvgMonthlyWithdrawal.Equal(decimal.NewFromInt(2000)))
	assert.InDelta(t, 562419.40, result.RemainingCapital.InexactFloat64(), 0.01)
}

func TestFixedMonthlyPensionDepletes(t *testing.T) {
	result := FixedMonthlyPension(decimal.NewFromInt(100000), decimal.NewFromInt(3000), 30, decimal.NewFromFloat(0.02))

	// The series stops at depletion rather than padding out the horizon.
	require.Len(t, result.YearlyWithdrawals, 3)
	assert.Equal(t, 3, result.CapitalDepletedYear)
	assert.True(t, result.SuccessRate.Equal(decimal.NewFromInt(3).Div(decimal.NewFromInt(30))))
	assert.True(t, result.RemainingCapital.IsZero())

	assert.True(t, result.YearlyWithdrawals[0].Withdrawal.Equal(decimal.NewFromInt(36000)))
	assert.True(t, result.YearlyWithdrawals[1].Withdrawal.Equal(decimal.NewFromInt(36000)))
	assert.InDelta(t, 30795, result.YearlyWithdrawals[2].Withdrawal.InexactFloat64(), 1.0)
	assert.True(t, result.YearlyWithdrawals[2].Capital.IsZero())
}

func TestHybridWithdrawal(t *testing.T) {
	result := HybridWithdrawal(decimal.NewFromInt(500000), decimal.NewFromInt(1800), decimal.NewFromFloat(0.2), 30, decimal.NewFromFloat(0.05))

	assert.Equal(t, "Hybrid (20% Reserve)", result.StrategyName)
	assert.True(t, result.InitialCapital.Equal(decimal.NewFromInt(500000)))
	require.Len(t, result.YearlyWithdrawals, 30)
	assert.Equal(t, 0, result.CapitalDepletedYear)
	assert.True(t, result.AvgMonthlyWithdrawal.Equal(decimal.NewFromInt(1800)))

	// Withdrawal pot remainder plus 100000 reserve grown for 30 years.
	assert.InDelta(t, 714984.48, result.RemainingCapital.InexactFloat64(), 0.01)

	// Yearly capital includes the reserve, so year 1 exceeds the pure
	// withdrawal pot.
	assert.True(t, result.YearlyWithdrawals[0].Capital.GreaterThan(decimal.NewFromInt(400000)))
}

func TestCalculateSafeWithdrawalRates(t *testing.T) {
	rates := CalculateSafeWithdrawalRates(
		decimal.NewFromInt(500000), decimal.NewFromInt(2500), 30, decimal.NewFromFloat(0.05), decimal.NewFromFloat(0.02))

	assert.True(t, rates.DesiredMonthlyPension.Equal(decimal.NewFromInt(2500)))
	assert.True(t, rates.DesiredWithdrawalRate.Equal(decimal.NewFromInt(6)))
	assert.InDelta(t, 2253.78, rates.Safe4PercentMonthly.InexactFloat64(), 0.01)
	assert.InDelta(t, 1875.25, rates.Dynamic4PercentMonthly.InexactFloat64(), 0.01)
	assert.InDelta(t, 635017.90, rates.DynamicRemainingCapital.InexactFloat64(), 0.01)
	assert.Equal(t, 0, rates.InflationAdjustedDepletedYear)
}
