package marketdata

import (
	"time"

	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/model"
)

var marketIndices = []model.MarketIndex{
	{Name: "S&P 500", Symbol: "SPX", Price: 5473.21, Change: 35.42, ChangePercent: 0.65},
	{Name: "Nasdaq", Symbol: "IXIC", Price: 17615.75, Change: 187.63, ChangePercent: 1.08},
	{Name: "Dow Jones", Symbol: "DJI", Price: 38513.61, Change: -52.65, ChangePercent: -0.14},
	{Name: "Russell 2000", Symbol: "RUT", Price: 2026.39, Change: 14.32, ChangePercent: 0.71},
}

var quotes = map[string]model.Quote{
	"AAPL":  {Symbol: "AAPL", Name: "Apple Inc.", Price: 183.86, Change: 0.76, ChangePercent: 0.41, SentimentScore: 0.72},
	"MSFT":  {Symbol: "MSFT", Name: "Microsoft Corp.", Price: 415.50, Change: -2.38, ChangePercent: -0.57, SentimentScore: 0.64},
	"NVDA":  {Symbol: "NVDA", Name: "NVIDIA Corp.", Price: 950.02, Change: 25.43, ChangePercent: 2.75, SentimentScore: 0.88},
	"AMZN":  {Symbol: "AMZN", Name: "Amazon.com Inc.", Price: 182.81, Change: 0.34, ChangePercent: 0.19, SentimentScore: 0.51},
	"GOOGL": {Symbol: "GOOGL", Name: "Alphabet Inc.", Price: 174.13, Change: -1.26, ChangePercent: -0.72, SentimentScore: 0.43},
	"META":  {Symbol: "META", Name: "Meta Platforms", Price: 511.32, Change: 4.87, ChangePercent: 0.96, SentimentScore: 0.65},
	"TSLA":  {Symbol: "TSLA", Name: "Tesla Inc.", Price: 172.82, Change: -3.58, ChangePercent: -2.03, SentimentScore: 0.30},
}

var marketMovers = []model.Quote{
	quotes["NVDA"],
	quotes["META"],
	quotes["AAPL"],
	quotes["TSLA"],
	quotes["GOOGL"],
}

var newsArticles = []model.NewsArticle{
	{
		ID:             "1",
		Title:          "Fed Signals Potential Rate Cut in June as Inflation Cools",
		Summary:        "Federal Reserve officials hinted at a possible interest rate reduction in June following recent inflation data showing signs of cooling in the economy.",
		Source:         "Financial Times",
		PublishedAt:    time.Date(2025, 5, 11, 10, 23, 0, 0, time.UTC),
		Sentiment:      model.SentimentPositive,
		SentimentScore: 0.76,
		RelevantStocks: []string{"SPY", "QQQ", "DIA"},
	},
	{
		ID:             "2",
		Title:          "NVIDIA Unveils Next-Gen AI Chips, Analysts Project 30% Revenue Growth",
		Summary:        "NVIDIA released its newest generation of AI processors, with analysts projecting substantial revenue growth as demand for AI computing continues to surge.",
		Source:         "TechCrunch",
		PublishedAt:    time.Date(2025, 5, 11, 9, 15, 0, 0, time.UTC),
		Sentiment:      model.SentimentVeryPositive,
		SentimentScore: 0.92,
		RelevantStocks: []string{"NVDA", "AMD", "INTC"},
	},
	{
		ID:             "3",
		Title:          "Apple's AR Headset Launch Delayed Again, Supply Chain Issues Cited",
		Summary:        "Apple has announced another delay in the launch of its augmented reality headset, citing ongoing supply chain challenges affecting production timelines.",
		Source:         "Bloomberg",
		PublishedAt:    time.Date(2025, 5, 11, 8, 37, 0, 0, time.UTC),
		Sentiment:      model.SentimentNegative,
		SentimentScore: 0.31,
		RelevantStocks: []string{"AAPL", "MSFT", "META"},
	},
	{
		ID:             "4",
		Title:          "Tesla Beats Q1 Delivery Expectations Despite EV Market Slowdown",
		Summary:        "Tesla reported stronger-than-expected first-quarter deliveries, bucking the trend of a broader slowdown in the electric vehicle market.",
		Source:         "Reuters",
		PublishedAt:    time.Date(2025, 5, 11, 7, 50, 0, 0, time.UTC),
		Sentiment:      model.SentimentPositive,
		SentimentScore: 0.68,
		RelevantStocks: []string{"TSLA", "F", "GM"},
	},
	{
		ID:             "5",
		Title:          "Amazon Expands Healthcare Push with New Clinic Acquisitions",
		Summary:        "Amazon is furthering its healthcare ambitions by acquiring a network of primary care clinics, signaling a deeper push into the healthcare sector.",
		Source:         "Wall Street Journal",
		PublishedAt:    time.Date(2025, 5, 11, 7, 12, 0, 0, time.UTC),
		Sentiment:      model.SentimentPositive,
		SentimentScore: 0.65,
		RelevantStocks: []string{"AMZN", "CVS", "UNH"},
	},
}

var stockDetails = map[string]model.StockDetail{
	"AAPL": {
		Quote:            quotes["AAPL"],
		MarketCap:        "2.82T",
		PERatio:          28.5,
		FiftyTwoWeekHigh: 198.23,
		FiftyTwoWeekLow:  142.37,
		News: []model.NewsArticle{
			{
				ID:             "101",
				Title:          "Apple's AR Headset Launch Delayed Again, Supply Chain Issues Cited",
				Summary:        "Apple has announced another delay in the launch of its augmented reality headset, citing ongoing supply chain challenges affecting production timelines.",
				Source:         "Bloomberg",
				PublishedAt:    time.Date(2025, 5, 11, 8, 37, 0, 0, time.UTC),
				Sentiment:      model.SentimentNegative,
				SentimentScore: 0.31,
			},
			{
				ID:             "102",
				Title:          "Apple Reports Record Services Revenue, iPhone Sales Steady",
				Summary:        "Apple's latest quarterly report shows record revenue from services while iPhone sales remained steady despite market challenges.",
				Source:         "CNBC",
				PublishedAt:    time.Date(2025, 5, 10, 14, 22, 0, 0, time.UTC),
				Sentiment:      model.SentimentPositive,
				SentimentScore: 0.78,
			},
			{
				ID:             "103",
				Title:          "Apple Intelligence Features Coming to iOS 19, Analysts Say",
				Summary:        "Analysts predict Apple will introduce significant AI features in iOS 19, potentially boosting device sales in the coming upgrade cycle.",
				Source:         "MacRumors",
				PublishedAt:    time.Date(2025, 5, 9, 11, 15, 0, 0, time.UTC),
				Sentiment:      model.SentimentVeryPositive,
				SentimentScore: 0.85,
			},
		},
	},
	"NVDA": {
		Quote:            quotes["NVDA"],
		MarketCap:        "2.34T",
		PERatio:          68.2,
		FiftyTwoWeekHigh: 974.00,
		FiftyTwoWeekLow:  438.16,
		News: []model.NewsArticle{
			{
				ID:             "201",
				Title:          "NVIDIA Unveils Next-Gen AI Chips, Analysts Project 30% Revenue Growth",
				Summary:        "NVIDIA released its newest generation of AI processors, with analysts projecting substantial revenue growth as demand for AI computing continues to surge.",
				Source:         "TechCrunch",
				PublishedAt:    time.Date(2025, 5, 11, 9, 15, 0, 0, time.UTC),
				Sentiment:      model.SentimentVeryPositive,
				SentimentScore: 0.92,
			},
			{
				ID:             "202",
				Title:          "NVIDIA Partners with Leading Cloud Providers on AI Infrastructure",
				Summary:        "NVIDIA announced expanded partnerships with major cloud providers to deploy its latest AI infrastructure solutions across global data centers.",
				Source:         "VentureBeat",
				PublishedAt:    time.Date(2025, 5, 10, 13, 45, 0, 0, time.UTC),
				Sentiment:      model.SentimentPositive,
				SentimentScore: 0.82,
			},
			{
				ID:             "203",
				Title:          "Semiconductor Supply Chain Normalization Could Impact NVIDIA Margins",
				Summary:        "Industry analysts note that normalizing semiconductor supply chains could affect NVIDIA's historically high margins as competition intensifies.",
				Source:         "Barron's",
				PublishedAt:    time.Date(2025, 5, 9, 16, 30, 0, 0, time.UTC),
				Sentiment:      model.SentimentNeutral,
				SentimentScore: 0.48,
			},
		},
	},
}

// PortfolioFixture is the demo portfolio loaded by cmd/seed.
var PortfolioFixture = []model.Quote{
	quotes["AAPL"],
	quotes["MSFT"],
	quotes["NVDA"],
	quotes["AMZN"],
	quotes["GOOGL"],
	quotes["META"],
	quotes["TSLA"],
}
