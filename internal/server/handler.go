package server

import (
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/vorsorge/pension-calculator/internal/calculation"
	"github.com/vorsorge/pension-calculator/internal/config"
	"github.com/vorsorge/pension-calculator/internal/domain"
)

// Handler serves the projection engine over HTTP.
type Handler struct {
	engine *calculation.Engine
	parser *config.InputParser
}

// NewHandler wires a handler around the given engine.
func NewHandler(engine *calculation.Engine) *Handler {
	return &Handler{engine: engine, parser: config.NewInputParser()}
}

// Route dispatches requests. Registered paths:
// POST /api/v1/compare, POST /api/v1/withdraw, GET /health.
func (h *Handler) Route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/api/v1/compare":
		h.handleCompare(ctx)
	case "/api/v1/withdraw":
		h.handleWithdraw(ctx)
	case "/health":
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"status":"ok"}`)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (h *Handler) handleCompare(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req CompareRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.parser.ValidatePlan(&req.Plan); err != nil {
		writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}

	report, err := h.engine.RunPlan(&req.Plan)
	if err != nil {
		writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(ctx, report)
}

func (h *Handler) handleWithdraw(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req WithdrawRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.WithdrawalYears < 1 {
		writeError(ctx, fasthttp.StatusUnprocessableEntity, "withdrawal_years must be at least 1")
		return
	}
	if !req.InitialCapital.IsPositive() {
		writeError(ctx, fasthttp.StatusUnprocessableEntity, "initial_capital must be positive")
		return
	}

	var result domain.WithdrawalResult
	switch req.Strategy {
	case domain.StrategyFourPercent:
		result = calculation.FourPercentRule(req.InitialCapital, req.WithdrawalYears, req.AnnualReturn, req.InflationRate, true)
	case domain.StrategyDynamic:
		result = calculation.DynamicPercentageWithdrawal(req.InitialCapital, req.WithdrawalPercentage, req.WithdrawalYears, req.AnnualReturn)
	case domain.StrategyFixedPension:
		result = calculation.FixedMonthlyPension(req.InitialCapital, req.MonthlyPension, req.WithdrawalYears, req.AnnualReturn)
	case domain.StrategyHybrid:
		result = calculation.HybridWithdrawal(req.InitialCapital, req.MonthlyPension, req.ReservePercentage, req.WithdrawalYears, req.AnnualReturn)
	default:
		writeError(ctx, fasthttp.StatusUnprocessableEntity, "unknown strategy: "+req.Strategy)
		return
	}

	writeJSON(ctx, result)
}

func writeJSON(ctx *fasthttp.RequestCtx, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	data, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetBody(data)
}
