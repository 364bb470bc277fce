package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vorsorge/pension-calculator/internal/domain"
)

var fourPercent = decimal.NewFromFloat(0.04)

// FourPercentRule withdraws 4% of the initial capital per year, optionally
// inflation-adjusted after the first year. Withdrawals are clamped to the
// remaining capital; once depleted the series keeps zero-withdrawal rows
// through the full horizon.
func FourPercentRule(initialCapital decimal.Decimal, withdrawalYears int, annualReturn, annualInflation decimal.Decimal, withInflationAdjustment bool) domain.WithdrawalResult {
	growth := one.Add(annualReturn)
	inflationGrowth := one.Add(annualInflation)

	yearly := make([]domain.YearWithdrawal, 0, withdrawalYears)
	currentCapital := initialCapital
	annualWithdrawal := initialCapital.Mul(fourPercent)
	totalWithdrawals := decimal.Zero
	capitalDepletedYear := 0

	for year := 1; year <= withdrawalYears; year++ {
		if withInflationAdjustment && year > 1 {
			annualWithdrawal = annualWithdrawal.Mul(inflationGrowth)
		}

		if !currentCapital.IsPositive() {
			if capitalDepletedYear == 0 {
				capitalDepletedYear = year - 1
			}
			yearly = append(yearly, domain.YearWithdrawal{Year: year})
			continue
		}

		actual := decimal.Min(annualWithdrawal, currentCapital)
		currentCapital = currentCapital.Sub(actual)
		totalWithdrawals = totalWithdrawals.Add(actual)

		currentCapital = currentCapital.Mul(growth)

		yearly = append(yearly, domain.YearWithdrawal{Year: year, Withdrawal: actual, Capital: currentCapital})
	}

	return domain.WithdrawalResult{
		StrategyName:         "4%-Regel (Trinity Study)",
		InitialCapital:       initialCapital,
		TotalWithdrawals:     totalWithdrawals,
		RemainingCapital:     decimal.Max(decimal.Zero, currentCapital),
		YearlyWithdrawals:    yearly,
		AvgMonthlyWithdrawal: avgMonthly(totalWithdrawals, withdrawalYears),
		CapitalDepletedYear:  capitalDepletedYear,
		SuccessRate:          successRate(capitalDepletedYear, withdrawalYears),
	}
}

// DynamicPercentageWithdrawal withdraws a percentage of the current capital
// each year. The capital never mathematically reaches zero, so the
// depletion year is always 0 and the success rate always 1.
func DynamicPercentageWithdrawal(initialCapital, withdrawalPercentage decimal.Decimal, withdrawalYears int, annualReturn decimal.Decimal) domain.WithdrawalResult {
	growth := one.Add(annualReturn)

	yearly := make([]domain.YearWithdrawal, 0, withdrawalYears)
	currentCapital := initialCapital
	totalWithdrawals := decimal.Zero

	for year := 1; year <= withdrawalYears; year++ {
		withdrawal := currentCapital.Mul(withdrawalPercentage)
		currentCapital = currentCapital.Sub(withdrawal)
		totalWithdrawals = totalWithdrawals.Add(withdrawal)

		currentCapital = currentCapital.Mul(growth)

		yearly = append(yearly, domain.YearWithdrawal{Year: year, Withdrawal: withdrawal, Capital: currentCapital})
	}

	return domain.WithdrawalResult{
		StrategyName:         fmt.Sprintf("Dynamische Entnahme (%s%%)", withdrawalPercentage.Mul(hundred).StringFixed(1)),
		InitialCapital:       initialCapital,
		TotalWithdrawals:     totalWithdrawals,
		RemainingCapital:     currentCapital,
		YearlyWithdrawals:    yearly,
		AvgMonthlyWithdrawal: avgMonthly(totalWithdrawals, withdrawalYears),
		CapitalDepletedYear:  0,
		SuccessRate:          one,
	}
}

// FixedMonthlyPension withdraws a fixed amount month by month, compounding
// the remainder monthly. Unlike the other strategies the yearly series
// stops the moment the capital is exhausted.
func FixedMonthlyPension(initialCapital, monthlyPension decimal.Decimal, withdrawalYears int, annualReturn decimal.Decimal) domain.WithdrawalResult {
	monthlyGrowth := one.Add(annualReturn.Div(twelve))

	yearly := make([]domain.YearWithdrawal, 0, withdrawalYears)
	currentCapital := initialCapital
	totalWithdrawals := decimal.Zero
	capitalDepletedYear := 0

	for year := 1; year <= withdrawalYears; year++ {
		yearWithdrawal := decimal.Zero

		for month := 0; month < 12; month++ {
			if !currentCapital.IsPositive() {
				if capitalDepletedYear == 0 {
					capitalDepletedYear = year
				}
				break
			}

			actual := decimal.Min(monthlyPension, currentCapital)
			currentCapital = currentCapital.Sub(actual)
			yearWithdrawal = yearWithdrawal.Add(actual)

			currentCapital = currentCapital.Mul(monthlyGrowth)
		}

		totalWithdrawals = totalWithdrawals.Add(yearWithdrawal)
		yearly = append(yearly, domain.YearWithdrawal{Year: year, Withdrawal: yearWithdrawal, Capital: currentCapital})

		if !currentCapital.IsPositive() {
			break
		}
	}

	return domain.WithdrawalResult{
		StrategyName:         fmt.Sprintf("Feste Rente (%s €/Monat)", monthlyPension.StringFixed(0)),
		InitialCapital:       initialCapital,
		TotalWithdrawals:     totalWithdrawals,
		RemainingCapital:     decimal.Max(decimal.Zero, currentCapital),
		YearlyWithdrawals:    yearly,
		AvgMonthlyWithdrawal: monthlyPension,
		CapitalDepletedYear:  capitalDepletedYear,
		SuccessRate:          successRate(capitalDepletedYear, withdrawalYears),
	}
}

// HybridWithdrawal keeps a reserve fraction compounding untouched and runs
// the rest through the fixed monthly pension. The yearly series shows the
// combined capital (declining withdrawal pot plus growing reserve).
func HybridWithdrawal(initialCapital, monthlyPension, reservePercentage decimal.Decimal, withdrawalYears int, annualReturn decimal.Decimal) domain.WithdrawalResult {
	reserveCapital := initialCapital.Mul(reservePercentage)
	withdrawalCapital := initialCapital.Sub(reserveCapital)

	result := FixedMonthlyPension(withdrawalCapital, monthlyPension, withdrawalYears, annualReturn)

	finalReserve := compoundLumpSum(reserveCapital, annualReturn, withdrawalYears)

	combined := make([]domain.YearWithdrawal, 0, len(result.YearlyWithdrawals))
	for _, row := range result.YearlyWithdrawals {
		reserveAtYear := compoundLumpSum(reserveCapital, annualReturn, row.Year)
		combined = append(combined, domain.YearWithdrawal{
			Year:       row.Year,
			Withdrawal: row.Withdrawal,
			Capital:    row.Capital.Add(reserveAtYear),
		})
	}

	result.StrategyName = fmt.Sprintf("Hybrid (%s%% Reserve)", reservePercentage.Mul(hundred).StringFixed(0))
	result.InitialCapital = initialCapital
	result.RemainingCapital = result.RemainingCapital.Add(finalReserve)
	result.YearlyWithdrawals = combined

	return result
}

// SafeWithdrawalRates compares a desired fixed pension against the 4% rule
// and a dynamic 4% withdrawal under shared parameters.
type SafeWithdrawalRates struct {
	DesiredMonthlyPension         decimal.Decimal `json:"desired_monthly_pension"`
	DesiredWithdrawalRate         decimal.Decimal `json:"desired_withdrawal_rate"`
	Safe4PercentMonthly           decimal.Decimal `json:"safe_4_percent_monthly"`
	Dynamic4PercentMonthly        decimal.Decimal `json:"dynamic_4_percent_monthly"`
	NoInflationDepletedYear       int             `json:"no_inflation_depleted_year"`
	InflationAdjustedDepletedYear int             `json:"inflation_adjusted_depleted_year"`
	DynamicRemainingCapital       decimal.Decimal `json:"dynamic_remaining_capital"`
}

// CalculateSafeWithdrawalRates runs the three reference strategies and
// aggregates their headline numbers.
func CalculateSafeWithdrawalRates(initialCapital, desiredMonthlyPension decimal.Decimal, withdrawalYears int, annualReturn, annualInflation decimal.Decimal) SafeWithdrawalRates {
	desiredAnnual := desiredMonthlyPension.Mul(twelve)

	fixed := FixedMonthlyPension(initialCapital, desiredMonthlyPension, withdrawalYears, annualReturn)
	fourPct := FourPercentRule(initialCapital, withdrawalYears, annualReturn, annualInflation, true)
	dynamic := DynamicPercentageWithdrawal(initialCapital, fourPercent, withdrawalYears, annualReturn)

	return SafeWithdrawalRates{
		DesiredMonthlyPension:         desiredMonthlyPension,
		DesiredWithdrawalRate:         desiredAnnual.Div(initialCapital).Mul(hundred),
		Safe4PercentMonthly:           fourPct.AvgMonthlyWithdrawal,
		Dynamic4PercentMonthly:        dynamic.AvgMonthlyWithdrawal,
		NoInflationDepletedYear:       fixed.CapitalDepletedYear,
		InflationAdjustedDepletedYear: fourPct.CapitalDepletedYear,
		DynamicRemainingCapital:       dynamic.RemainingCapital,
	}
}

func avgMonthly(totalWithdrawals decimal.Decimal, withdrawalYears int) decimal.Decimal {
	if withdrawalYears == 0 {
		return decimal.Zero
	}
	return totalWithdrawals.Div(decimal.NewFromInt(int64(withdrawalYears))).Div(twelve)
}

func successRate(capitalDepletedYear, withdrawalYears int) decimal.Decimal {
	if capitalDepletedYear == 0 {
		return one
	}
	return decimal.NewFromInt(int64(capitalDepletedYear)).Div(decimal.NewFromInt(int64(withdrawalYears)))
}
