package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/service"
)

// SentimentHandler handles sentiment-search endpoints.
type SentimentHandler struct {
	marketService service.MarketService
}

// NewSentimentHandler creates a new sentiment handler.
func NewSentimentHandler(marketService service.MarketService) *SentimentHandler {
	return &SentimentHandler{marketService: marketService}
}

// Search godoc
// @Summary Stock detail with sentiment and advisor verdict
// @Description Fundamentals, related news, sentiment label and the deterministic Buy/Hold/Sell suggestion for a ticker.
// @Tags sentiment
// @Produce json
// @Security BearerAuth
// @Param symbol path string true "Ticker symbol"
// @Success 200 {object} model.StockDetail
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /sentiment/{symbol} [get]
func (h *SentimentHandler) Search(c echo.Context) error {
	detail, err := h.marketService.StockDetail(c.Request().Context(), c.Param("symbol"))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, detail)
}
