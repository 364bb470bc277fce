package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vorsorge/pension-calculator/internal/domain"
)

// Engine orchestrates a full plan run: it builds a calculator per
// configured product, collects the results, and optionally simulates a
// decumulation phase on top of the best result.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger. Nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Calculators builds the product calculators configured in the plan, in
// plan order (ETF, Basisrente, Riester, Privatrente).
func (e *Engine) Calculators(plan *domain.Plan) []Calculator {
	var calculators []Calculator
	if plan.ETF != nil {
		calculators = append(calculators, NewETFCalculator(plan.Assumptions, *plan.ETF))
	}
	if plan.Basisrente != nil {
		calculators = append(calculators, NewBasisrenteCalculator(plan.Assumptions, *plan.Basisrente))
	}
	if plan.Riester != nil {
		calculators = append(calculators, NewRiesterCalculator(plan.Assumptions, *plan.Riester))
	}
	if plan.Privatrente != nil {
		calculators = append(calculators, NewPrivatrenteCalculator(plan.Assumptions, *plan.Privatrente))
	}
	return calculators
}

// RunPlan executes every configured product projection and, when a
// withdrawal phase is configured, the decumulation simulation. The
// withdrawal starts from the plan's initial capital, or from the best
// product's final value when none is given.
func (e *Engine) RunPlan(plan *domain.Plan) (*domain.Report, error) {
	calculators := e.Calculators(plan)
	if len(calculators) == 0 {
		return nil, fmt.Errorf("plan configures no products")
	}

	report := &domain.Report{}
	for _, calc := range calculators {
		e.Logger.Debugf("calculating %s", calc.Name())
		result, err := calc.Calculate()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", calc.Name(), err)
		}
		report.Results = append(report.Results, result)
	}

	if plan.Withdrawal != nil {
		comparison := NewComparison(report.Results)
		withdrawal, err := e.runWithdrawal(plan.Withdrawal, comparison.Best().TotalValue)
		if err != nil {
			return nil, err
		}
		report.Withdrawals = append(report.Withdrawals, withdrawal)
	}

	return report, nil
}

func (e *Engine) runWithdrawal(w *domain.WithdrawalPlan, bestValue decimal.Decimal) (domain.WithdrawalResult, error) {
	capital := w.InitialCapital
	if capital.IsZero() {
		e.Logger.Infof("withdrawal capital not set, using best product value %s", bestValue.StringFixed(2))
		capital = bestValue
	}

	switch w.Strategy {
	case domain.StrategyFourPercent:
		return FourPercentRule(capital, w.WithdrawalYears, w.AnnualReturn, w.InflationRate, true), nil
	case domain.StrategyDynamic:
		return DynamicPercentageWithdrawal(capital, w.WithdrawalPercentage, w.WithdrawalYears, w.AnnualReturn), nil
	case domain.StrategyFixedPension:
		return FixedMonthlyPension(capital, w.MonthlyPension, w.WithdrawalYears, w.AnnualReturn), nil
	case domain.StrategyHybrid:
		return HybridWithdrawal(capital, w.MonthlyPension, w.ReservePercentage, w.WithdrawalYears, w.AnnualReturn), nil
	default:
		return domain.WithdrawalResult{}, fmt.Errorf("unknown withdrawal strategy %q", w.Strategy)
	}
}
