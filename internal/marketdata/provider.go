// Package marketdata serves fixture-backed market quotes, news and stock
// details. There is no real feed: prices start from static fixtures and get
// a small pseudo-random jitter per read so the dashboard looks alive.
package marketdata

import (
	"math"
	"math/rand"
	"strings"
	"sync"

	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/model"
)

// Provider exposes read-only market data.
type Provider interface {
	Indices() []model.MarketIndex
	Movers() []model.Quote
	News() []model.NewsArticle
	Quote(symbol string) (model.Quote, bool)
	Detail(symbol string) (*model.StockDetail, bool)
}

type fixtureProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewFixtureProvider builds a provider over the built-in fixtures. The seed
// makes the jitter reproducible in tests.
func NewFixtureProvider(seed int64) Provider {
	return &fixtureProvider{rng: rand.New(rand.NewSource(seed))}
}

// jitter nudges a price by up to ±0.5% and returns the new price together
// with the adjusted absolute and percent change.
func (p *fixtureProvider) jitter(price, change float64) (float64, float64, float64) {
	p.mu.Lock()
	delta := (p.rng.Float64() - 0.5) * 0.01 * price
	p.mu.Unlock()

	newPrice := math.Round((price+delta)*100) / 100
	newChange := math.Round((change+delta)*100) / 100
	base := newPrice - newChange
	if base == 0 {
		return newPrice, newChange, 0
	}
	pct := math.Round(newChange/base*10000) / 100
	return newPrice, newChange, pct
}

func (p *fixtureProvider) Indices() []model.MarketIndex {
	out := make([]model.MarketIndex, len(marketIndices))
	for i, idx := range marketIndices {
		price, change, pct := p.jitter(idx.Price, idx.Change)
		idx.Price, idx.Change, idx.ChangePercent = price, change, pct
		out[i] = idx
	}
	return out
}

func (p *fixtureProvider) Movers() []model.Quote {
	out := make([]model.Quote, len(marketMovers))
	for i, q := range marketMovers {
		price, change, pct := p.jitter(q.Price, q.Change)
		q.Price, q.Change, q.ChangePercent = price, change, pct
		out[i] = q
	}
	return out
}

func (p *fixtureProvider) News() []model.NewsArticle {
	out := make([]model.NewsArticle, len(newsArticles))
	copy(out, newsArticles)
	return out
}

func (p *fixtureProvider) Quote(symbol string) (model.Quote, bool) {
	symbol = strings.ToUpper(symbol)
	q, ok := quotes[symbol]
	if !ok {
		return model.Quote{}, false
	}
	q.Price, q.Change, q.ChangePercent = p.jitter(q.Price, q.Change)
	return q, true
}

func (p *fixtureProvider) Detail(symbol string) (*model.StockDetail, bool) {
	symbol = strings.ToUpper(symbol)
	d, ok := stockDetails[symbol]
	if !ok {
		return nil, false
	}
	detail := d
	detail.News = append([]model.NewsArticle(nil), d.News...)
	detail.Sentiment = model.SentimentFromScore(detail.SentimentScore)
	detail.Suggestion, detail.Reasoning = Suggest(detail.SentimentScore, detail.ChangePercent)
	return &detail, true
}

// Suggest derives the advisor verdict from sentiment and momentum. This is a
// plain deterministic branch, not a model.
func Suggest(sentimentScore, changePercent float64) (model.Suggestion, string) {
	switch {
	case sentimentScore >= 0.8:
		return model.SuggestionBuy, "Strong sentiment and sustained momentum support opening or increasing a position."
	case sentimentScore <= 0.35 && changePercent < 0:
		return model.SuggestionSell, "Weak sentiment combined with negative momentum suggests reducing exposure."
	default:
		return model.SuggestionHold, "Mixed signals: sentiment and momentum do not clearly favor buying or selling at current levels."
	}
}
