package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vorsorge/pension-calculator/internal/domain"
)

func TestPrivatrenteCalculatorAnnuity(t *testing.T) {
	calc := NewPrivatrenteCalculator(etfAssumptions(100, 10), domain.DefaultPrivatrenteParams())

	result, err := calc.Calculate()
	require.NoError(t, err)

	assert.Equal(t, "Privatrente (Verrentung)", result.Name)
	assert.True(t, result.TotalPaid.Equal(decimal.NewFromInt(12000)))
	assert.InDelta(t, 0.032, result.NetReturn.InexactFloat64(), 1e-12)

	// Ertragsanteil at 67 is 17%: tax applies to that fraction of the
	// balance at the retirement rate.
	expectedTax := result.GrossValue.Mul(decimal.NewFromFloat(0.17)).Mul(decimal.NewFromFloat(0.30))
	assert.True(t, result.TotalValue.Equal(result.GrossValue.Sub(expectedTax)))
}

func TestPrivatrenteCalculatorLumpSum(t *testing.T) {
	params := domain.DefaultPrivatrenteParams()
	params.PayoutOption = domain.PayoutLumpSum

	result, err := NewPrivatrenteCalculator(etfAssumptions(100, 10), params).Calculate()
	require.NoError(t, err)

	assert.Equal(t, "Privatrente (Einmalauszahlung)", result.Name)

	// Half-income rule: half the gain taxed at the retirement rate.
	gain := result.GrossValue.Sub(result.TotalPaid)
	expectedTax := gain.Mul(decimal.NewFromFloat(0.5)).Mul(decimal.NewFromFloat(0.30))
	assert.True(t, result.TotalValue.Equal(result.GrossValue.Sub(expectedTax)))
}

func TestPrivatrenteLumpSumBeatsAnnuityAtDefaults(t *testing.T) {
	assumptions := etfAssumptions(100, 10)

	lumpParams := domain.DefaultPrivatrenteParams()
	lumpParams.PayoutOption = domain.PayoutLumpSum

	annuity, err := NewPrivatrenteCalculator(assumptions, domain.DefaultPrivatrenteParams()).Calculate()
	require.NoError(t, err)
	lump, err := NewPrivatrenteCalculator(assumptions, lumpParams).Calculate()
	require.NoError(t, err)

	// With a modest gain, taxing half the gain is cheaper than taxing 17%
	// of the whole balance.
	assert.True(t, lump.TotalValue.GreaterThan(annuity.TotalValue))
	assert.True(t, lump.GrossValue.Equal(annuity.GrossValue))
}

func TestPrivatrenteCalculatorInitialInvestment(t *testing.T) {
	params := domain.DefaultPrivatrenteParams()
	params.InitialInvestment = decimal.NewFromInt(5000)

	result, err := NewPrivatrenteCalculator(etfAssumptions(100, 10), params).Calculate()
	require.NoError(t, err)

	assert.True(t, result.TotalPaid.Equal(decimal.NewFromInt(17000)))
}

func TestErtragsanteil(t *testing.T) {
	tests := []struct {
		age  int
		want int
	}{
		{40, 30},
		{50, 30},
		{60, 22},
		{65, 18},
		{67, 17},
		{70, 15},
		{85, 15},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ertragsanteil(tt.age), "age %d", tt.age)
	}
}
