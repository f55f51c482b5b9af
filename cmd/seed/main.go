// Command seed provisions a demo user with the dashboard's reference
// portfolio so a fresh install has something to show.
package main

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/config"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/db"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/history"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/marketdata"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/model"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/repository"
)

const (
	demoEmail    = "demo@finadvisor.dev"
	demoName     = "Demo User"
	demoPassword = "demo-password"
)

// demoShares mirrors the reference dashboard portfolio: share counts and the
// cost basis per holding, keyed by ticker.
var demoShares = map[string]struct {
	shares    int64
	costBasis float64
}{
	"AAPL":  {15, 160.24},
	"MSFT":  {10, 380.60},
	"NVDA":  {8, 700.30},
	"AMZN":  {12, 145.20},
	"GOOGL": {8, 140.50},
	"META":  {6, 380.75},
	"TSLA":  {5, 200.40},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Portfolio{}, &model.UserSettings{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	portfolioRepo := repository.NewPortfolioRepository(gormDB)

	user, err := userRepo.FindByEmail(ctx, demoEmail)
	if err == gorm.ErrRecordNotFound {
		hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
		if err != nil {
			log.Fatalf("Failed to hash demo password: %v", err)
		}
		user = &model.User{Email: demoEmail, Name: demoName, PasswordHash: string(hash)}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create demo user: %v", err)
		}
		log.Printf("Created demo user %s", demoEmail)
	} else if err != nil {
		log.Fatalf("Failed to look up demo user: %v", err)
	} else {
		log.Printf("Demo user %s already exists", demoEmail)
	}

	portfolio := buildDemoPortfolio(user)
	if existing, err := portfolioRepo.FindByUserID(ctx, user.ID); err == nil {
		portfolio.Version = existing.Version
	}
	if err := portfolioRepo.Save(ctx, portfolio); err != nil {
		log.Fatalf("Failed to save demo portfolio: %v", err)
	}

	log.Printf("Seeded %d holdings, total value %s", len(portfolio.Stocks), portfolio.TotalValue().StringFixed(2))
}

func buildDemoPortfolio(user *model.User) *model.Portfolio {
	now := time.Now()
	portfolio := model.NewPortfolio(user.ID, now)
	portfolio.CashBalance = decimal.NewFromInt(2500)

	for _, quote := range marketdata.PortfolioFixture {
		ref := demoShares[quote.Symbol]
		portfolio.Stocks = append(portfolio.Stocks, model.StockHolding{
			Symbol:         quote.Symbol,
			Name:           quote.Name,
			Shares:         decimal.NewFromInt(ref.shares),
			Price:          decimal.NewFromFloat(quote.Price),
			Change:         quote.Change,
			ChangePercent:  quote.ChangePercent,
			CostBasis:      decimal.NewFromFloat(ref.costBasis),
			SentimentScore: quote.SentimentScore,
		})
	}

	// Backfill a plausible trailing history ending at today's total.
	total := portfolio.TotalValue()
	entries := make([]history.Entry, 0, history.Window)
	for i := history.Window - 1; i >= 0; i-- {
		day := history.DayKey(now.AddDate(0, 0, -i))
		// Older entries drift a little below the current total.
		drift := decimal.NewFromInt(int64(i * 37))
		entries = append(entries, history.Entry{Date: day, Value: total.Sub(drift)})
	}
	portfolio.History = model.ValueHistory(entries)
	portfolio.LastUpdated = now
	return portfolio
}
