package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/service"
)

// MarketHandler handles market feed endpoints.
type MarketHandler struct {
	marketService service.MarketService
}

// NewMarketHandler creates a new market handler.
func NewMarketHandler(marketService service.MarketService) *MarketHandler {
	return &MarketHandler{marketService: marketService}
}

// Indices godoc
// @Summary Broad market index quotes
// @Tags market
// @Produce json
// @Success 200 {array} model.MarketIndex
// @Router /market/indices [get]
func (h *MarketHandler) Indices(c echo.Context) error {
	indices, err := h.marketService.Indices(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, indices)
}

// Movers godoc
// @Summary Top market movers
// @Tags market
// @Produce json
// @Success 200 {array} model.Quote
// @Router /market/movers [get]
func (h *MarketHandler) Movers(c echo.Context) error {
	movers, err := h.marketService.Movers(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, movers)
}

// News godoc
// @Summary Market news with sentiment annotations
// @Tags market
// @Produce json
// @Success 200 {array} model.NewsArticle
// @Router /market/news [get]
func (h *MarketHandler) News(c echo.Context) error {
	news, err := h.marketService.News(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, news)
}

// Quote godoc
// @Summary Quote for a single ticker
// @Tags market
// @Produce json
// @Param symbol path string true "Ticker symbol"
// @Success 200 {object} model.Quote
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /market/quotes/{symbol} [get]
func (h *MarketHandler) Quote(c echo.Context) error {
	quote, err := h.marketService.Quote(c.Request().Context(), c.Param("symbol"))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, quote)
}
