package marketdata

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/model"
)

func TestFixtureProvider_Quote(t *testing.T) {
	p := NewFixtureProvider(1)

	q, ok := p.Quote("aapl")
	assert.True(t, ok)
	assert.Equal(t, "AAPL", q.Symbol)
	// jitter stays within half a percent of the fixture price
	base := quotes["AAPL"].Price
	assert.InDelta(t, base, q.Price, base*0.005+0.01)

	_, ok = p.Quote("ZZZZ")
	assert.False(t, ok)
}

func TestFixtureProvider_Indices(t *testing.T) {
	p := NewFixtureProvider(1)

	indices := p.Indices()
	assert.Len(t, indices, len(marketIndices))
	for i, idx := range indices {
		assert.Equal(t, marketIndices[i].Symbol, idx.Symbol)
		assert.Greater(t, idx.Price, 0.0)
		// change percent is consistent with price and change
		if base := idx.Price - idx.Change; base != 0 {
			assert.InDelta(t, idx.Change/base*100, idx.ChangePercent, 0.01)
		}
	}
}

func TestFixtureProvider_Movers(t *testing.T) {
	p := NewFixtureProvider(42)
	movers := p.Movers()
	assert.Len(t, movers, len(marketMovers))
	for _, q := range movers {
		assert.NotEmpty(t, q.Symbol)
		assert.NotEmpty(t, q.Name)
	}
}

func TestFixtureProvider_News(t *testing.T) {
	p := NewFixtureProvider(1)
	news := p.News()
	assert.Len(t, news, len(newsArticles))

	// the returned slice is a copy; mutating it must not touch the fixtures
	original := newsArticles[0].Title
	news[0].Title = "mutated"
	assert.Equal(t, original, newsArticles[0].Title)
}

func TestFixtureProvider_Detail(t *testing.T) {
	p := NewFixtureProvider(1)

	detail, ok := p.Detail("aapl")
	assert.True(t, ok)
	assert.Equal(t, "AAPL", detail.Symbol)
	assert.Equal(t, model.SentimentFromScore(detail.SentimentScore), detail.Sentiment)
	assert.NotEmpty(t, detail.Suggestion)
	assert.NotEmpty(t, detail.Reasoning)
	assert.NotEmpty(t, detail.MarketCap)

	_, ok = p.Detail("ZZZZ")
	assert.False(t, ok)
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name           string
		sentimentScore float64
		changePercent  float64
		expected       model.Suggestion
	}{
		{name: "strong sentiment buys", sentimentScore: 0.8, changePercent: -1.0, expected: model.SuggestionBuy},
		{name: "weak sentiment with losses sells", sentimentScore: 0.35, changePercent: -0.5, expected: model.SuggestionSell},
		{name: "weak sentiment but rising holds", sentimentScore: 0.2, changePercent: 1.5, expected: model.SuggestionHold},
		{name: "middling sentiment holds", sentimentScore: 0.6, changePercent: -2.0, expected: model.SuggestionHold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestion, reasoning := Suggest(tt.sentimentScore, tt.changePercent)
			assert.Equal(t, tt.expected, suggestion)
			assert.NotEmpty(t, reasoning)
		})
	}
}

func TestJitter_ZeroBase(t *testing.T) {
	p := &fixtureProvider{rng: rand.New(rand.NewSource(1))}
	// price == change makes the derived base zero; percent must not be NaN
	price, change, pct := p.jitter(10, 10)
	_ = price
	_ = change
	assert.False(t, math.IsNaN(pct))
}
