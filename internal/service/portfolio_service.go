package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/cache"
	apperrors "github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/errors"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/history"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/model"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/repository"
)

const portfolioCacheTTL = 5 * time.Minute

// PortfolioSummary holds the computed totals shown on the dashboard header.
type PortfolioSummary struct {
	TotalValue       decimal.Decimal `json:"total_value"`
	TotalCost        decimal.Decimal `json:"total_cost"`
	Gain             decimal.Decimal `json:"gain"`
	GainPercent      decimal.Decimal `json:"gain_percent"`
	DailyChange      decimal.Decimal `json:"daily_change"`
	DailyChangePct   decimal.Decimal `json:"daily_change_percent"`
	HoldingsCount    int             `json:"holdings_count"`
	AverageSentiment float64         `json:"average_sentiment"`
}

// PortfolioService handles portfolio state and its trailing value history.
type PortfolioService interface {
	// Load returns the stored portfolio, or a synthesized empty one (31 days
	// of zero history) that has not been persisted yet.
	Load(ctx context.Context, userID uuid.UUID) (*model.Portfolio, error)
	// Save overwrites the stored portfolio with the given one, stamping
	// LastUpdated. A stale Version is rejected with ErrVersionConflict.
	Save(ctx context.Context, userID uuid.UUID, portfolio *model.Portfolio) (*model.Portfolio, error)
	AddStock(ctx context.Context, userID uuid.UUID, holding model.StockHolding) (*model.Portfolio, error)
	RemoveStock(ctx context.Context, userID uuid.UUID, symbol string) (*model.Portfolio, error)
	SetCash(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*model.Portfolio, error)
	Summary(ctx context.Context, userID uuid.UUID) (*PortfolioSummary, error)
}

type portfolioService struct {
	repo  repository.PortfolioRepository
	cache *cache.Client
}

// NewPortfolioService creates a new portfolio service.
func NewPortfolioService(repo repository.PortfolioRepository, cache *cache.Client) PortfolioService {
	return &portfolioService{repo: repo, cache: cache}
}

func (s *portfolioService) cacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("portfolio:%s", userID.String())
}

func (s *portfolioService) Load(ctx context.Context, userID uuid.UUID) (*model.Portfolio, error) {
	var cached model.Portfolio
	if s.cache.GetJSON(ctx, s.cacheKey(userID), &cached) {
		return &cached, nil
	}

	p, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// First access: synthesized, deliberately not persisted until the
			// first mutation or explicit save.
			return model.NewPortfolio(userID, time.Now()), nil
		}
		return nil, fmt.Errorf("load portfolio: %w", err)
	}

	s.cache.SetJSON(ctx, s.cacheKey(userID), p, portfolioCacheTTL)
	return p, nil
}

func (s *portfolioService) Save(ctx context.Context, userID uuid.UUID, portfolio *model.Portfolio) (*model.Portfolio, error) {
	portfolio.UserID = userID
	portfolio.LastUpdated = time.Now()
	if err := s.repo.Save(ctx, portfolio); err != nil {
		if err == apperrors.ErrVersionConflict {
			return nil, err
		}
		return nil, fmt.Errorf("save portfolio: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return portfolio, nil
}

func (s *portfolioService) AddStock(ctx context.Context, userID uuid.UUID, holding model.StockHolding) (*model.Portfolio, error) {
	p, err := s.loadForMutation(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Exact match on the stored symbol; callers upper-case tickers.
	if p.Stocks.Contains(holding.Symbol) {
		return nil, apperrors.ErrDuplicateSymbol
	}

	p.Stocks = append(p.Stocks, holding)
	return s.persist(ctx, p)
}

func (s *portfolioService) RemoveStock(ctx context.Context, userID uuid.UUID, symbol string) (*model.Portfolio, error) {
	p, err := s.loadForMutation(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Removing an absent symbol is not an error; the history still gets a
	// fresh upsert with the unchanged total.
	p.Stocks = p.Stocks.Remove(symbol)
	return s.persist(ctx, p)
}

func (s *portfolioService) SetCash(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*model.Portfolio, error) {
	if amount.IsNegative() {
		return nil, apperrors.ErrNegativeAmount
	}

	p, err := s.loadForMutation(ctx, userID)
	if err != nil {
		return nil, err
	}

	p.CashBalance = amount
	return s.persist(ctx, p)
}

func (s *portfolioService) Summary(ctx context.Context, userID uuid.UUID) (*PortfolioSummary, error) {
	p, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &PortfolioSummary{
		TotalValue:    p.TotalValue(),
		TotalCost:     p.TotalCost(),
		HoldingsCount: len(p.Stocks),
	}
	summary.Gain = summary.TotalValue.Sub(p.CashBalance).Sub(summary.TotalCost)
	if !summary.TotalCost.IsZero() {
		summary.GainPercent = summary.Gain.Div(summary.TotalCost).Mul(decimal.NewFromInt(100))
	}
	if change, pct, ok := history.DailyChange(p.History); ok {
		summary.DailyChange = change
		summary.DailyChangePct = pct
	}
	if len(p.Stocks) > 0 {
		var total float64
		for _, h := range p.Stocks {
			total += h.SentimentScore
		}
		summary.AverageSentiment = total / float64(len(p.Stocks))
	}
	return summary, nil
}

// loadForMutation reads the stored record directly, bypassing the cache so a
// mutation always starts from the persisted version.
func (s *portfolioService) loadForMutation(ctx context.Context, userID uuid.UUID) (*model.Portfolio, error) {
	p, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return model.NewPortfolio(userID, time.Now()), nil
		}
		return nil, fmt.Errorf("load portfolio: %w", err)
	}
	return p, nil
}

// persist records the new total value under today's date, stamps the record
// and writes it through the repository.
func (s *portfolioService) persist(ctx context.Context, p *model.Portfolio) (*model.Portfolio, error) {
	p.History = model.ValueHistory(history.UpsertToday(p.History, p.TotalValue()))
	p.LastUpdated = time.Now()
	if err := s.repo.Save(ctx, p); err != nil {
		if err == apperrors.ErrVersionConflict {
			return nil, err
		}
		return nil, fmt.Errorf("save portfolio: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(p.UserID))
	return p, nil
}
