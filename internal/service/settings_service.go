package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/model"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/repository"
)

// SettingsService manages per-user dashboard preferences.
type SettingsService interface {
	// Get returns the stored settings, or the defaults (not yet persisted)
	// when the user has none.
	Get(ctx context.Context, userID uuid.UUID, email string) (*model.UserSettings, error)
	Update(ctx context.Context, settings *model.UserSettings) (*model.UserSettings, error)
}

type settingsService struct {
	repo repository.SettingsRepository
}

// NewSettingsService creates a new settings service.
func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) Get(ctx context.Context, userID uuid.UUID, email string) (*model.UserSettings, error) {
	settings, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return model.DefaultSettings(userID, email), nil
		}
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, settings *model.UserSettings) (*model.UserSettings, error) {
	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}
	return settings, nil
}
