package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/errors"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/marketdata"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/model"
)

func newMarketService() MarketService {
	return NewMarketService(marketdata.NewFixtureProvider(1), nil)
}

func TestMarketService_Indices(t *testing.T) {
	svc := newMarketService()
	indices, err := svc.Indices(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, indices)
	for _, idx := range indices {
		assert.NotEmpty(t, idx.Symbol)
		assert.Greater(t, idx.Price, 0.0)
	}
}

func TestMarketService_Movers(t *testing.T) {
	svc := newMarketService()
	movers, err := svc.Movers(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, movers)
}

func TestMarketService_News(t *testing.T) {
	svc := newMarketService()
	news, err := svc.News(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, news)
	for _, article := range news {
		assert.NotEmpty(t, article.Title)
		assert.NotEmpty(t, article.Sentiment)
		assert.GreaterOrEqual(t, article.SentimentScore, 0.0)
		assert.LessOrEqual(t, article.SentimentScore, 1.0)
	}
}

func TestMarketService_Quote(t *testing.T) {
	svc := newMarketService()

	q, err := svc.Quote(context.Background(), "AAPL")
	assert.NoError(t, err)
	assert.Equal(t, "AAPL", q.Symbol)

	_, err = svc.Quote(context.Background(), "ZZZZ")
	assert.Equal(t, apperrors.ErrSymbolNotFound, err)
}

func TestMarketService_StockDetail(t *testing.T) {
	svc := newMarketService()

	detail, err := svc.StockDetail(context.Background(), "NVDA")
	assert.NoError(t, err)
	assert.Equal(t, "NVDA", detail.Symbol)
	assert.NotEmpty(t, detail.News)
	assert.Equal(t, model.SuggestionBuy, detail.Suggestion)

	_, err = svc.StockDetail(context.Background(), "ZZZZ")
	assert.Equal(t, apperrors.ErrSymbolNotFound, err)
}
