package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/errors"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/model"
)

// PortfolioRepository defines portfolio persistence operations. Each user has
// at most one record; records are never deleted.
type PortfolioRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Portfolio, error)
	// Save overwrites the record for portfolio.UserID, creating it if absent.
	// The write is a compare-and-swap on Version: a stale version is rejected
	// with ErrVersionConflict instead of silently clobbering a newer record.
	Save(ctx context.Context, portfolio *model.Portfolio) error
}

type portfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository builds a GORM-backed repository.
func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Portfolio, error) {
	var p model.Portfolio
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *portfolioRepository) Save(ctx context.Context, portfolio *model.Portfolio) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Portfolio
		err := tx.Where("user_id = ?", portfolio.UserID).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			portfolio.Version = 1
			return tx.Create(portfolio).Error
		}
		if err != nil {
			return err
		}
		if existing.Version != portfolio.Version {
			return apperrors.ErrVersionConflict
		}
		portfolio.Version++
		res := tx.Model(&model.Portfolio{}).
			Where("user_id = ? AND version = ?", portfolio.UserID, existing.Version).
			Updates(map[string]interface{}{
				"stocks":       portfolio.Stocks,
				"cash_balance": portfolio.CashBalance,
				"history":      portfolio.History,
				"version":      portfolio.Version,
				"last_updated": portfolio.LastUpdated,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrVersionConflict
		}
		return nil
	})
}
