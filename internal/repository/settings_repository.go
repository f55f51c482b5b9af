package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/model"
)

// SettingsRepository defines user-settings persistence operations.
type SettingsRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.UserSettings, error)
	Upsert(ctx context.Context, settings *model.UserSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository builds a GORM-backed repository.
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.UserSettings, error) {
	var s model.UserSettings
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, settings *model.UserSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
