package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/errors"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/model"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/service"
)

// PortfolioHandler handles portfolio endpoints. Every route derives the
// portfolio owner from the JWT claims; there is no cross-user access.
type PortfolioHandler struct {
	portfolioService service.PortfolioService
}

// NewPortfolioHandler creates a new portfolio handler.
func NewPortfolioHandler(portfolioService service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// AddStockRequest represents an add-stock request.
type AddStockRequest struct {
	Symbol         string          `json:"symbol" validate:"required,max=8"`
	Name           string          `json:"name" validate:"required"`
	Shares         decimal.Decimal `json:"shares" validate:"required"`
	Price          decimal.Decimal `json:"price" validate:"required"`
	Change         float64         `json:"change"`
	ChangePercent  float64         `json:"change_percent"`
	CostBasis      decimal.Decimal `json:"cost_basis" validate:"required"`
	SentimentScore float64         `json:"sentiment_score" validate:"gte=0,lte=1"`
}

// SetCashRequest represents a cash balance update.
type SetCashRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// Get godoc
// @Summary Load the caller's portfolio
// @Description Returns the stored portfolio, or an empty one with a 31-day zero history on first access.
// @Tags portfolio
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Portfolio
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /portfolio [get]
func (h *PortfolioHandler) Get(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	p, err := h.portfolioService.Load(c.Request().Context(), claims.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, p)
}

// Save godoc
// @Summary Overwrite the caller's portfolio
// @Description Full save with optimistic concurrency: a stale version is rejected with 409.
// @Tags portfolio
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.Portfolio true "Portfolio"
// @Success 200 {object} model.Portfolio
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /portfolio [put]
func (h *PortfolioHandler) Save(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var portfolio model.Portfolio
	if err := c.Bind(&portfolio); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if portfolio.CashBalance.IsNegative() {
		return domainError(apperrors.ErrNegativeAmount)
	}

	saved, err := h.portfolioService.Save(c.Request().Context(), claims.UserID, &portfolio)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, saved)
}

// AddStock godoc
// @Summary Add a holding
// @Tags portfolio
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddStockRequest true "Holding"
// @Success 201 {object} model.Portfolio
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /portfolio/stocks [post]
func (h *PortfolioHandler) AddStock(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req AddStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !req.Shares.IsPositive() || !req.Price.IsPositive() || !req.CostBasis.IsPositive() {
		return domainError(apperrors.ErrInvalidAmount)
	}

	holding := model.StockHolding{
		Symbol:         strings.ToUpper(strings.TrimSpace(req.Symbol)),
		Name:           req.Name,
		Shares:         req.Shares,
		Price:          req.Price,
		Change:         req.Change,
		ChangePercent:  req.ChangePercent,
		CostBasis:      req.CostBasis,
		SentimentScore: req.SentimentScore,
	}

	p, err := h.portfolioService.AddStock(c.Request().Context(), claims.UserID, holding)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, p)
}

// RemoveStock godoc
// @Summary Remove a holding
// @Description Removing a symbol that is not held is a no-op, not an error.
// @Tags portfolio
// @Produce json
// @Security BearerAuth
// @Param symbol path string true "Ticker symbol"
// @Success 200 {object} model.Portfolio
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /portfolio/stocks/{symbol} [delete]
func (h *PortfolioHandler) RemoveStock(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	p, err := h.portfolioService.RemoveStock(c.Request().Context(), claims.UserID, symbol)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, p)
}

// SetCash godoc
// @Summary Update the cash balance
// @Tags portfolio
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SetCashRequest true "New cash balance"
// @Success 200 {object} model.Portfolio
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /portfolio/cash [put]
func (h *PortfolioHandler) SetCash(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req SetCashRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	p, err := h.portfolioService.SetCash(c.Request().Context(), claims.UserID, req.Amount)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, p)
}

// Summary godoc
// @Summary Portfolio totals and day-over-day change
// @Tags portfolio
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.PortfolioSummary
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /portfolio/summary [get]
func (h *PortfolioHandler) Summary(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	summary, err := h.portfolioService.Summary(c.Request().Context(), claims.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, summary)
}
