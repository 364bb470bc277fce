package server

import (
	"github.com/shopspring/decimal"

	"github.com/vorsorge/pension-calculator/internal/domain"
)

// CompareRequest is the body of POST /api/v1/compare. It is the plan
// itself; product blocks omitted in the JSON stay unset.
type CompareRequest struct {
	domain.Plan
}

// WithdrawRequest is the body of POST /api/v1/withdraw.
type WithdrawRequest struct {
	Strategy             string          `json:"strategy"`
	InitialCapital       decimal.Decimal `json:"initial_capital"`
	WithdrawalYears      int             `json:"withdrawal_years"`
	AnnualReturn         decimal.Decimal `json:"annual_return"`
	InflationRate        decimal.Decimal `json:"inflation_rate"`
	MonthlyPension       decimal.Decimal `json:"monthly_pension"`
	WithdrawalPercentage decimal.Decimal `json:"withdrawal_percentage"`
	ReservePercentage    decimal.Decimal `json:"reserve_percentage"`
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
