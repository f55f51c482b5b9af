package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/auth"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/config"
	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	portfolioHandler *handler.PortfolioHandler,
	marketHandler *handler.MarketHandler,
	sentimentHandler *handler.SentimentHandler,
	strategyHandler *handler.StrategyHandler,
	settingsHandler *handler.SettingsHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Market data is public: the feed carries no per-user state.
	api.GET("/market/indices", marketHandler.Indices)
	api.GET("/market/movers", marketHandler.Movers)
	api.GET("/market/news", marketHandler.News)
	api.GET("/market/quotes/:symbol", marketHandler.Quote)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.GET("/me", authHandler.Me)

	// Portfolio routes
	secured.GET("/portfolio", portfolioHandler.Get)
	secured.PUT("/portfolio", portfolioHandler.Save)
	secured.GET("/portfolio/summary", portfolioHandler.Summary)
	secured.POST("/portfolio/stocks", portfolioHandler.AddStock)
	secured.DELETE("/portfolio/stocks/:symbol", portfolioHandler.RemoveStock)
	secured.PUT("/portfolio/cash", portfolioHandler.SetCash)

	// Sentiment search
	secured.GET("/sentiment/:symbol", sentimentHandler.Search)

	// Strategy lab
	secured.POST("/strategies/generate", strategyHandler.Generate)

	// Settings
	secured.GET("/settings", settingsHandler.Get)
	secured.PUT("/settings", settingsHandler.Update)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
