package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/model"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/service"
)

// SettingsHandler handles user settings endpoints.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// UpdateSettingsRequest represents a settings update.
type UpdateSettingsRequest struct {
	Autopilot            bool   `json:"autopilot"`
	RiskProfile          string `json:"risk_profile" validate:"required,oneof=conservative balanced aggressive"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	AlertThreshold       int    `json:"alert_threshold" validate:"gte=0,lte=100"`
	EmailNotifications   bool   `json:"email_notifications"`
	SMSNotifications     bool   `json:"sms_notifications"`
	Email                string `json:"email" validate:"omitempty,email"`
	Phone                string `json:"phone" validate:"omitempty,max=32"`
}

// Get godoc
// @Summary Current user settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserSettings
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	settings, err := h.settingsService.Get(c.Request().Context(), claims.UserID, claims.Email)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, settings)
}

// Update godoc
// @Summary Update user settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateSettingsRequest true "Settings"
// @Success 200 {object} model.UserSettings
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	settings, err := h.settingsService.Update(c.Request().Context(), &model.UserSettings{
		UserID:               claims.UserID,
		Autopilot:            req.Autopilot,
		RiskProfile:          model.RiskTolerance(req.RiskProfile),
		NotificationsEnabled: req.NotificationsEnabled,
		AlertThreshold:       req.AlertThreshold,
		EmailNotifications:   req.EmailNotifications,
		SMSNotifications:     req.SMSNotifications,
		Email:                req.Email,
		Phone:                req.Phone,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, settings)
}
