package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	_ "github.com/micha7777-hub/finadvisorbot-autopilot-ai/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/auth"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/cache"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/config"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/db"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/handler"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/marketdata"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/model"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/repository"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/router"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/service"
)

// @title FinAdvisor AutoPilot API
// @version 1.0
// @description Portfolio dashboard backend: auth, portfolio persistence with trailing value history, market feed, sentiment search and strategy generation.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Portfolio{},
		&model.UserSettings{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	portfolioRepo := repository.NewPortfolioRepository(gormDB)
	settingsRepo := repository.NewSettingsRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	marketProvider := marketdata.NewFixtureProvider(time.Now().UnixNano())
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	portfolioService := service.NewPortfolioService(portfolioRepo, cacheClient)
	marketService := service.NewMarketService(marketProvider, cacheClient)
	strategyService := service.NewStrategyService()
	settingsService := service.NewSettingsService(settingsRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	portfolioHandler := handler.NewPortfolioHandler(portfolioService)
	marketHandler := handler.NewMarketHandler(marketService)
	sentimentHandler := handler.NewSentimentHandler(marketService)
	strategyHandler := handler.NewStrategyHandler(strategyService)
	settingsHandler := handler.NewSettingsHandler(settingsService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		portfolioHandler,
		marketHandler,
		sentimentHandler,
		strategyHandler,
		settingsHandler,
	)

	// Log swagger full path
	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		if strings.HasPrefix(cfg.SwaggerHost, "http://") || strings.HasPrefix(cfg.SwaggerHost, "https://") {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else {
			swaggerURL = "http://" + cfg.SwaggerHost + "/swagger/index.html"
		}
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
