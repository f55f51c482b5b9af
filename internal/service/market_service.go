package service

import (
	"context"
	"time"

	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/cache"
	apperrors "github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/errors"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/marketdata"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/model"
)

// Quotes are jittered on every provider read; caching pins them for a few
// minutes so repeated page loads see stable numbers.
const quoteCacheTTL = 5 * time.Minute

// MarketService serves market feed and sentiment-search data.
type MarketService interface {
	Indices(ctx context.Context) ([]model.MarketIndex, error)
	Movers(ctx context.Context) ([]model.Quote, error)
	News(ctx context.Context) ([]model.NewsArticle, error)
	Quote(ctx context.Context, symbol string) (*model.Quote, error)
	StockDetail(ctx context.Context, symbol string) (*model.StockDetail, error)
}

type marketService struct {
	provider marketdata.Provider
	cache    *cache.Client
}

// NewMarketService creates a new market service.
func NewMarketService(provider marketdata.Provider, cache *cache.Client) MarketService {
	return &marketService{provider: provider, cache: cache}
}

func (s *marketService) Indices(ctx context.Context) ([]model.MarketIndex, error) {
	var cached []model.MarketIndex
	if s.cache.GetJSON(ctx, "market:indices", &cached) {
		return cached, nil
	}
	indices := s.provider.Indices()
	s.cache.SetJSON(ctx, "market:indices", indices, quoteCacheTTL)
	return indices, nil
}

func (s *marketService) Movers(ctx context.Context) ([]model.Quote, error) {
	var cached []model.Quote
	if s.cache.GetJSON(ctx, "market:movers", &cached) {
		return cached, nil
	}
	movers := s.provider.Movers()
	s.cache.SetJSON(ctx, "market:movers", movers, quoteCacheTTL)
	return movers, nil
}

func (s *marketService) News(ctx context.Context) ([]model.NewsArticle, error) {
	return s.provider.News(), nil
}

func (s *marketService) Quote(ctx context.Context, symbol string) (*model.Quote, error) {
	key := "market:quote:" + symbol
	var cached model.Quote
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}
	q, ok := s.provider.Quote(symbol)
	if !ok {
		return nil, apperrors.ErrSymbolNotFound
	}
	s.cache.SetJSON(ctx, key, q, quoteCacheTTL)
	return &q, nil
}

func (s *marketService) StockDetail(ctx context.Context, symbol string) (*model.StockDetail, error) {
	detail, ok := s.provider.Detail(symbol)
	if !ok {
		return nil, apperrors.ErrSymbolNotFound
	}
	return detail, nil
}
