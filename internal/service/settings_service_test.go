package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/model"
)

// MockSettingsRepository is a mock implementation of SettingsRepository.
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.UserSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserSettings), args.Error(1)
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, settings *model.UserSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func TestSettingsService_Get_DefaultsWhenMissing(t *testing.T) {
	userID := uuid.New()
	mockRepo := new(MockSettingsRepository)
	mockRepo.On("FindByUserID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewSettingsService(mockRepo)
	settings, err := svc.Get(context.Background(), userID, "demo@finadvisor.dev")

	assert.NoError(t, err)
	assert.Equal(t, userID, settings.UserID)
	assert.Equal(t, "demo@finadvisor.dev", settings.Email)
	assert.False(t, settings.Autopilot)
	assert.Equal(t, model.RiskBalanced, settings.RiskProfile)
	assert.True(t, settings.NotificationsEnabled)
	assert.Equal(t, 5, settings.AlertThreshold)
	// defaults are synthesized, not written back
	mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestSettingsService_Get_Stored(t *testing.T) {
	userID := uuid.New()
	stored := &model.UserSettings{
		UserID:      userID,
		Autopilot:   true,
		RiskProfile: model.RiskAggressive,
	}

	mockRepo := new(MockSettingsRepository)
	mockRepo.On("FindByUserID", mock.Anything, userID).Return(stored, nil)

	svc := NewSettingsService(mockRepo)
	settings, err := svc.Get(context.Background(), userID, "ignored@example.com")

	assert.NoError(t, err)
	assert.Equal(t, stored, settings)
	mockRepo.AssertExpectations(t)
}

func TestSettingsService_Update(t *testing.T) {
	userID := uuid.New()
	settings := &model.UserSettings{UserID: userID, Autopilot: true, RiskProfile: model.RiskConservative}

	mockRepo := new(MockSettingsRepository)
	mockRepo.On("Upsert", mock.Anything, settings).Return(nil)

	svc := NewSettingsService(mockRepo)
	saved, err := svc.Update(context.Background(), settings)

	assert.NoError(t, err)
	assert.Equal(t, settings, saved)
	mockRepo.AssertExpectations(t)
}
