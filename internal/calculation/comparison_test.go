package calculation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vorsorge/pension-calculator/internal/domain"
)

func comparisonFixture() []domain.InvestmentResult {
	return []domain.InvestmentResult{
		{
			Name:       "Riester-Rente",
			TotalPaid:  decimal.NewFromInt(8710),
			TaxBenefit: decimal.NewFromInt(5040),
			TotalValue: decimal.NewFromInt(13408),
			NetReturn:  decimal.NewFromFloat(0.01),
			YearlyValues: []domain.YearValue{
				{Year: 1, Value: decimal.NewFromInt(1380)},
			},
		},
		{
			Name:       "ETF-Sparplan (privat)",
			TotalPaid:  decimal.NewFromInt(12000),
			TotalValue: decimal.NewFromInt(15807),
			NetReturn:  decimal.NewFromFloat(0.066),
			YearlyValues: []domain.YearValue{
				{Year: 1, Value: decimal.NewFromInt(1236)},
				{Year: 2, Value: decimal.NewFromInt(2556)},
			},
		},
		{
			Name:       "Basisrente (Rürup)",
			TotalPaid:  decimal.NewFromInt(6960),
			TaxBenefit: decimal.NewFromInt(5040),
			TotalValue: decimal.NewFromInt(14572),
			NetReturn:  decimal.NewFromFloat(0.055),
		},
	}
}

func TestNewComparisonRanksByTotalValue(t *testing.T) {
	c := NewComparison(comparisonFixture())

	require.Len(t, c.Results, 3)
	assert.Equal(t, "ETF-Sparplan (privat)", c.Results[0].Name)
	assert.Equal(t, "Basisrente (Rürup)", c.Results[1].Name)
	assert.Equal(t, "Riester-Rente", c.Results[2].Name)
	assert.Equal(t, "ETF-Sparplan (privat)", c.Best().Name)
}

func TestNewComparisonStableOnTies(t *testing.T) {
	results := []domain.InvestmentResult{
		{Name: "A", TotalValue: decimal.NewFromInt(1000)},
		{Name: "B", TotalValue: decimal.NewFromInt(1000)},
	}

	c := NewComparison(results)

	assert.Equal(t, "A", c.Results[0].Name)
	assert.Equal(t, "B", c.Results[1].Name)
}

func TestNewComparisonLeavesInputUntouched(t *testing.T) {
	results := comparisonFixture()
	NewComparison(results)

	assert.Equal(t, "Riester-Rente", results[0].Name)
}

func TestComparisonSummary(t *testing.T) {
	summary := NewComparison(comparisonFixture()).Summary()

	assert.Contains(t, summary, "VERGLEICH ALTERSVORSORGE-PRODUKTE")
	assert.Contains(t, summary, "1. ETF-Sparplan (privat)")
	assert.Contains(t, summary, "3. Riester-Rente")
	assert.Contains(t, summary, "Steuervorteile/Zulagen")
	assert.Contains(t, summary, "15807.00 €")

	// Tax-benefit lines only appear for subsidized products.
	etfSection := summary[strings.Index(summary, "1. ETF"):strings.Index(summary, "2. Basisrente")]
	assert.NotContains(t, etfSection, "Steuervorteile")
}

func TestComparisonDeltaReport(t *testing.T) {
	report := NewComparison(comparisonFixture()).DeltaReport()

	assert.Contains(t, report, "VERGLEICH ZUM BESTEN PRODUKT")
	assert.NotContains(t, report, "ETF-Sparplan (privat):\n")
	assert.Contains(t, report, "Basisrente (Rürup):")
	assert.Contains(t, report, "Differenz zu ETF-Sparplan (privat)")
	// 15807 - 14572
	assert.Contains(t, report, "1235.00 €")
}

func TestComparisonYearlyComparison(t *testing.T) {
	table := NewComparison(comparisonFixture()).YearlyComparison()

	assert.Contains(t, table, "ENTWICKLUNG ÜBER DIE JAHRE")
	assert.Contains(t, table, "Jahr")
	// Longest series wins: two rows.
	assert.Contains(t, table, "\n2     ")
	assert.Contains(t, table, "2556.00 €")
}

func TestComparisonRecommendation(t *testing.T) {
	recommendation := NewComparison(comparisonFixture()).Recommendation()

	assert.Contains(t, recommendation, "EMPFEHLUNG")
	assert.Contains(t, recommendation, "ETF-Sparplan (privat)")
	assert.Contains(t, recommendation, "15807.00 €")
	assert.Contains(t, recommendation, "WICHTIGE HINWEISE")
}
