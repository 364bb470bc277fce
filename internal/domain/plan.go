package domain

import (
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Payout options for the private annuity.
const (
	PayoutAnnuity = "annuity"
	PayoutLumpSum = "lump_sum"
)

// Withdrawal strategy identifiers accepted in a plan file.
const (
	StrategyFourPercent  = "four_percent_rule"
	StrategyDynamic      = "dynamic_percentage"
	StrategyFixedPension = "fixed_monthly_pension"
	StrategyHybrid       = "hybrid"
)

// Assumptions are the inputs shared by every product in a plan.
type Assumptions struct {
	MonthlyContribution  decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	Years                int             `yaml:"years" json:"years"`
	PersonalTaxRate      decimal.Decimal `yaml:"personal_tax_rate" json:"personal_tax_rate"`
	RetirementTaxRate    decimal.Decimal `yaml:"retirement_tax_rate" json:"retirement_tax_rate"`
	InflationRate        decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	ContributionDynamics decimal.Decimal `yaml:"contribution_dynamics" json:"contribution_dynamics"`
}

// DefaultAssumptions mirror the typical comparison setup: 42% marginal rate
// while working, 30% in retirement, 2% inflation.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		PersonalTaxRate:   decimal.NewFromFloat(0.42),
		RetirementTaxRate: decimal.NewFromFloat(0.30),
		InflationRate:     decimal.NewFromFloat(0.02),
	}
}

// ETFParams configure the ETF savings-plan projection.
type ETFParams struct {
	AnnualReturn      decimal.Decimal `yaml:"annual_return" json:"annual_return"`
	TER               decimal.Decimal `yaml:"ter" json:"ter"`
	CapitalGainsTax   decimal.Decimal `yaml:"capital_gains_tax" json:"capital_gains_tax"`
	TaxAllowance      decimal.Decimal `yaml:"tax_allowance" json:"tax_allowance"`
	OrderFee          decimal.Decimal `yaml:"order_fee" json:"order_fee"`
	DepotFeeYearly    decimal.Decimal `yaml:"depot_fee_yearly" json:"depot_fee_yearly"`
	Spread            decimal.Decimal `yaml:"spread" json:"spread"`
	InitialInvestment decimal.Decimal `yaml:"initial_investment" json:"initial_investment"`
	RebalancingCount  int             `yaml:"rebalancing_count" json:"rebalancing_count"`
}

// DefaultETFParams: 0.2% TER, Abgeltungssteuer incl. Soli, 1000 EUR
// Sparerpauschbetrag, 1 EUR order fee, 0.2% spread.
func DefaultETFParams() ETFParams {
	return ETFParams{
		AnnualReturn:    decimal.NewFromFloat(0.07),
		TER:             decimal.NewFromFloat(0.002),
		CapitalGainsTax: decimal.NewFromFloat(0.26375),
		TaxAllowance:    decimal.NewFromInt(1000),
		OrderFee:        decimal.NewFromInt(1),
		Spread:          decimal.NewFromFloat(0.002),
	}
}

// BasisrenteParams configure the deferred annuity with tax deduction.
type BasisrenteParams struct {
	AnnualReturn         decimal.Decimal `yaml:"annual_return" json:"annual_return"`
	DeductiblePercentage decimal.Decimal `yaml:"deductible_percentage" json:"deductible_percentage"`
	EffectiveCosts       decimal.Decimal `yaml:"effective_costs" json:"effective_costs"`
	HonorarFee           decimal.Decimal `yaml:"honorar_fee" json:"honorar_fee"`
	InitialInvestment    decimal.Decimal `yaml:"initial_investment" json:"initial_investment"`
}

// DefaultBasisrenteParams: contributions fully deductible since 2025, 1.5%
// effective yearly costs.
func DefaultBasisrenteParams() BasisrenteParams {
	return BasisrenteParams{
		AnnualReturn:         decimal.NewFromFloat(0.07),
		DeductiblePercentage: decimal.NewFromInt(1),
		EffectiveCosts:       decimal.NewFromFloat(0.015),
	}
}

// RiesterParams configure the state-subsidized pension.
type RiesterParams struct {
	AnnualReturn      decimal.Decimal `yaml:"annual_return" json:"annual_return"`
	BasicAllowance    decimal.Decimal `yaml:"basic_allowance" json:"basic_allowance"`
	ChildrenAllowance decimal.Decimal `yaml:"children_allowance" json:"children_allowance"`
	EffectiveCosts    decimal.Decimal `yaml:"effective_costs" json:"effective_costs"`
	MaxDeductible     decimal.Decimal `yaml:"max_deductible" json:"max_deductible"`

	// LumpSumPercentage (0..30) is carried through for payout-split
	// reporting; it does not change the projection itself.
	LumpSumPercentage decimal.Decimal `yaml:"lump_sum_percentage" json:"lump_sum_percentage"`
}

// DefaultRiesterParams: conservative 3% return due to the capital
// guarantee, 175 EUR Grundzulage, 2100 EUR Sonderausgabenabzug cap.
func DefaultRiesterParams() RiesterParams {
	return RiesterParams{
		AnnualReturn:   decimal.NewFromFloat(0.03),
		BasicAllowance: decimal.NewFromInt(175),
		EffectiveCosts: decimal.NewFromFloat(0.02),
		MaxDeductible:  decimal.NewFromInt(2100),
	}
}

// PrivatrenteParams configure the unsubsidized private annuity.
type PrivatrenteParams struct {
	AnnualReturn      decimal.Decimal `yaml:"annual_return" json:"annual_return"`
	EffectiveCosts    decimal.Decimal `yaml:"effective_costs" json:"effective_costs"`
	HonorarFee        decimal.Decimal `yaml:"honorar_fee" json:"honorar_fee"`
	InitialInvestment decimal.Decimal `yaml:"initial_investment" json:"initial_investment"`
	PayoutOption      string          `yaml:"payout_option" json:"payout_option"`
	RetirementAge     int             `yaml:"retirement_age" json:"retirement_age"`
}

// DefaultPrivatrenteParams: 5% return, 1.8% effective costs, annuitized
// payout starting at 67.
func DefaultPrivatrenteParams() PrivatrenteParams {
	return PrivatrenteParams{
		AnnualReturn:   decimal.NewFromFloat(0.05),
		EffectiveCosts: decimal.NewFromFloat(0.018),
		PayoutOption:   PayoutAnnuity,
		RetirementAge:  67,
	}
}

// WithdrawalPlan describes an optional decumulation phase appended to a
// comparison run. InitialCapital zero means "use the best product's final
// value".
type WithdrawalPlan struct {
	Strategy             string          `yaml:"strategy" json:"strategy"`
	InitialCapital       decimal.Decimal `yaml:"initial_capital" json:"initial_capital"`
	WithdrawalYears      int             `yaml:"withdrawal_years" json:"withdrawal_years"`
	AnnualReturn         decimal.Decimal `yaml:"annual_return" json:"annual_return"`
	InflationRate        decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	MonthlyPension       decimal.Decimal `yaml:"monthly_pension" json:"monthly_pension"`
	WithdrawalPercentage decimal.Decimal `yaml:"withdrawal_percentage" json:"withdrawal_percentage"`
	ReservePercentage    decimal.Decimal `yaml:"reserve_percentage" json:"reserve_percentage"`
}

// DefaultWithdrawalPlan: 4% rule over 30 years at 4% return, 2% inflation.
func DefaultWithdrawalPlan() WithdrawalPlan {
	return WithdrawalPlan{
		Strategy:             StrategyFourPercent,
		WithdrawalYears:      30,
		AnnualReturn:         decimal.NewFromFloat(0.04),
		InflationRate:        decimal.NewFromFloat(0.02),
		WithdrawalPercentage: decimal.NewFromFloat(0.04),
		ReservePercentage:    decimal.NewFromFloat(0.2),
	}
}

// Plan is the full input of a comparison run. Products are optional; only
// the configured ones are calculated.
type Plan struct {
	Assumptions Assumptions        `yaml:"assumptions" json:"assumptions"`
	ETF         *ETFParams         `yaml:"etf,omitempty" json:"etf,omitempty"`
	Basisrente  *BasisrenteParams  `yaml:"basisrente,omitempty" json:"basisrente,omitempty"`
	Riester     *RiesterParams     `yaml:"riester,omitempty" json:"riester,omitempty"`
	Privatrente *PrivatrenteParams `yaml:"privatrente,omitempty" json:"privatrente,omitempty"`
	Withdrawal  *WithdrawalPlan    `yaml:"withdrawal,omitempty" json:"withdrawal,omitempty"`
}

// The UnmarshalYAML implementations below seed each block with its defaults
// so a plan file only has to name the values it overrides.

func (a *Assumptions) UnmarshalYAML(value *yaml.Node) error {
	type raw Assumptions
	out := raw(DefaultAssumptions())
	if err := value.Decode(&out); err != nil {
		return err
	}
	*a = Assumptions(out)
	return nil
}

func (p *ETFParams) UnmarshalYAML(value *yaml.Node) error {
	type raw ETFParams
	out := raw(DefaultETFParams())
	if err := value.Decode(&out); err != nil {
		return err
	}
	*p = ETFParams(out)
	return nil
}

func (p *BasisrenteParams) UnmarshalYAML(value *yaml.Node) error {
	type raw BasisrenteParams
	out := raw(DefaultBasisrenteParams())
	if err := value.Decode(&out); err != nil {
		return err
	}
	*p = BasisrenteParams(out)
	return nil
}

func (p *RiesterParams) UnmarshalYAML(value *yaml.Node) error {
	type raw RiesterParams
	out := raw(DefaultRiesterParams())
	if err := value.Decode(&out); err != nil {
		return err
	}
	*p = RiesterParams(out)
	return nil
}

func (p *PrivatrenteParams) UnmarshalYAML(value *yaml.Node) error {
	type raw PrivatrenteParams
	out := raw(DefaultPrivatrenteParams())
	if err := value.Decode(&out); err != nil {
		return err
	}
	*p = PrivatrenteParams(out)
	return nil
}

func (w *WithdrawalPlan) UnmarshalYAML(value *yaml.Node) error {
	type raw WithdrawalPlan
	out := raw(DefaultWithdrawalPlan())
	if err := value.Decode(&out); err != nil {
		return err
	}
	*w = WithdrawalPlan(out)
	return nil
}

// The JSON counterparts keep the HTTP surface consistent with plan files.

func (a *Assumptions) UnmarshalJSON(data []byte) error {
	type raw Assumptions
	out := raw(DefaultAssumptions())
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*a = Assumptions(out)
	return nil
}

func (p *ETFParams) UnmarshalJSON(data []byte) error {
	type raw ETFParams
	out := raw(DefaultETFParams())
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*p = ETFParams(out)
	return nil
}

func (p *BasisrenteParams) UnmarshalJSON(data []byte) error {
	type raw BasisrenteParams
	out := raw(DefaultBasisrenteParams())
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*p = BasisrenteParams(out)
	return nil
}

func (p *RiesterParams) UnmarshalJSON(data []byte) error {
	type raw RiesterParams
	out := raw(DefaultRiesterParams())
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*p = RiesterParams(out)
	return nil
}

func (p *PrivatrenteParams) UnmarshalJSON(data []byte) error {
	type raw PrivatrenteParams
	out := raw(DefaultPrivatrenteParams())
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*p = PrivatrenteParams(out)
	return nil
}

func (w *WithdrawalPlan) UnmarshalJSON(data []byte) error {
	type raw WithdrawalPlan
	out := raw(DefaultWithdrawalPlan())
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*w = WithdrawalPlan(out)
	return nil
}
