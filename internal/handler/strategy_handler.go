package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/errors"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/model"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/service"
)

// StrategyHandler handles strategy generation endpoints.
type StrategyHandler struct {
	strategyService service.StrategyService
}

// NewStrategyHandler creates a new strategy handler.
func NewStrategyHandler(strategyService service.StrategyService) *StrategyHandler {
	return &StrategyHandler{strategyService: strategyService}
}

// GenerateStrategyRequest represents a strategy generation request.
type GenerateStrategyRequest struct {
	RiskTolerance     string          `json:"risk_tolerance" validate:"required,oneof=conservative balanced aggressive"`
	Horizon           string          `json:"investment_horizon" validate:"required,oneof=short medium long"`
	Goal              string          `json:"investment_goal" validate:"required,oneof=growth income preservation"`
	InitialInvestment decimal.Decimal `json:"initial_investment"`
}

// Generate godoc
// @Summary Generate an investment strategy
// @Description Deterministic allocation, performance comparison and projection for the given configuration.
// @Tags strategies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateStrategyRequest true "Strategy configuration"
// @Success 200 {object} model.Strategy
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /strategies/generate [post]
func (h *StrategyHandler) Generate(c echo.Context) error {
	var req GenerateStrategyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.InitialInvestment.IsNegative() {
		return domainError(apperrors.ErrNegativeAmount)
	}

	strategy, err := h.strategyService.Generate(c.Request().Context(), model.StrategyConfig{
		RiskTolerance:     model.RiskTolerance(req.RiskTolerance),
		Horizon:           model.InvestmentHorizon(req.Horizon),
		Goal:              model.InvestmentGoal(req.Goal),
		InitialInvestment: req.InitialInvestment,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, strategy)
}
