package model

import "time"

// Sentiment is the closed set of sentiment labels attached to quotes and news.
type Sentiment string

const (
	SentimentVeryPositive Sentiment = "very-positive"
	SentimentPositive     Sentiment = "positive"
	SentimentNeutral      Sentiment = "neutral"
	SentimentNegative     Sentiment = "negative"
)

// SentimentFromScore derives the label for a 0..1 sentiment score.
func SentimentFromScore(score float64) Sentiment {
	switch {
	case score >= 0.85:
		return SentimentVeryPositive
	case score >= 0.6:
		return SentimentPositive
	case score <= 0.3:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// MarketIndex is a quote for a broad market index.
type MarketIndex struct {
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}

// Quote is a single-stock quote with its sentiment score.
type Quote struct {
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Change         float64 `json:"change"`
	ChangePercent  float64 `json:"change_percent"`
	SentimentScore float64 `json:"sentiment_score"`
}

// NewsArticle is a news item with its sentiment annotation.
type NewsArticle struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Summary        string    `json:"summary"`
	Source         string    `json:"source"`
	URL            string    `json:"url,omitempty"`
	PublishedAt    time.Time `json:"published_at"`
	Sentiment      Sentiment `json:"sentiment"`
	SentimentScore float64   `json:"sentiment_score"`
	RelevantStocks []string  `json:"relevant_stocks,omitempty"`
}

// Suggestion is the closed set of advisor verdicts.
type Suggestion string

const (
	SuggestionBuy  Suggestion = "Buy"
	SuggestionHold Suggestion = "Hold"
	SuggestionSell Suggestion = "Sell"
)

// StockDetail is the sentiment-search result for a single ticker.
type StockDetail struct {
	Quote
	MarketCap        string        `json:"market_cap"`
	PERatio          float64       `json:"pe_ratio"`
	FiftyTwoWeekHigh float64       `json:"fifty_two_week_high"`
	FiftyTwoWeekLow  float64       `json:"fifty_two_week_low"`
	Sentiment        Sentiment     `json:"sentiment"`
	News             []NewsArticle `json:"news"`
	Suggestion       Suggestion    `json:"ai_suggestion"`
	Reasoning        string        `json:"ai_reasoning"`
}
