package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/vorsorge/pension-calculator/internal/calculation"
	"github.com/vorsorge/pension-calculator/internal/domain"
)

// InputParser handles parsing of plan files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file. Product blocks not named in
// the file stay nil; named blocks are seeded with their defaults before the
// file's overrides apply.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// ValidatePlan rejects invalid configurations before any computation runs.
// Degenerate-but-valid inputs (zero contribution, zero return) pass.
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if err := ip.validateAssumptions(&plan.Assumptions); err != nil {
		return err
	}

	if plan.ETF == nil && plan.Basisrente == nil && plan.Riester == nil && plan.Privatrente == nil {
		return fmt.Errorf("no products configured")
	}

	if plan.ETF != nil {
		if plan.ETF.RebalancingCount < 0 {
			return fmt.Errorf("rebalancing count cannot be negative")
		}
		if plan.ETF.RebalancingCount >= plan.Assumptions.Years && plan.ETF.RebalancingCount > 0 {
			return fmt.Errorf("%w: %d rebalancings over %d years",
				calculation.ErrRebalancingCount, plan.ETF.RebalancingCount, plan.Assumptions.Years)
		}
		if plan.ETF.InitialInvestment.IsNegative() {
			return fmt.Errorf("initial investment cannot be negative")
		}
	}

	if plan.Riester != nil {
		if plan.Riester.LumpSumPercentage.IsNegative() {
			return fmt.Errorf("lump sum percentage cannot be negative")
		}
	}

	if plan.Privatrente != nil {
		switch plan.Privatrente.PayoutOption {
		case domain.PayoutAnnuity, domain.PayoutLumpSum:
		default:
			return fmt.Errorf("payout option must be %q or %q, got %q",
				domain.PayoutAnnuity, domain.PayoutLumpSum, plan.Privatrente.PayoutOption)
		}
		if plan.Privatrente.RetirementAge <= 0 {
			return fmt.Errorf("retirement age must be positive")
		}
	}

	if plan.Withdrawal != nil {
		if err := ip.validateWithdrawal(plan.Withdrawal); err != nil {
			return err
		}
	}

	return nil
}

func (ip *InputParser) validateAssumptions(a *domain.Assumptions) error {
	if a.Years < 1 {
		return fmt.Errorf("horizon must be at least 1 year, got %d", a.Years)
	}
	if a.MonthlyContribution.IsNegative() {
		return fmt.Errorf("monthly contribution cannot be negative")
	}
	if !rateInUnitInterval(a.PersonalTaxRate) {
		return fmt.Errorf("personal tax rate must be between 0 and 1")
	}
	if !rateInUnitInterval(a.RetirementTaxRate) {
		return fmt.Errorf("retirement tax rate must be between 0 and 1")
	}
	if a.ContributionDynamics.IsNegative() {
		return fmt.Errorf("contribution dynamics cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateWithdrawal(w *domain.WithdrawalPlan) error {
	switch w.Strategy {
	case domain.StrategyFourPercent, domain.StrategyDynamic, domain.StrategyFixedPension, domain.StrategyHybrid:
	default:
		return fmt.Errorf("unknown withdrawal strategy %q", w.Strategy)
	}
	if w.WithdrawalYears < 1 {
		return fmt.Errorf("withdrawal years must be at least 1, got %d", w.WithdrawalYears)
	}
	if w.InitialCapital.IsNegative() {
		return fmt.Errorf("withdrawal capital cannot be negative")
	}
	if !rateInUnitInterval(w.ReservePercentage) {
		return fmt.Errorf("reserve percentage must be between 0 and 1")
	}
	return nil
}

func rateInUnitInterval(rate decimal.Decimal) bool {
	return !rate.IsNegative() && rate.LessThanOrEqual(decimal.NewFromInt(1))
}
