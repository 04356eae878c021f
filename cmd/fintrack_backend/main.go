package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/fintrackhq/fintrack_app/internal/core/commands"
	"github.com/fintrackhq/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_app/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack_app/internal/core/services"
	"github.com/fintrackhq/fintrack_app/internal/handlers"
	"github.com/fintrackhq/fintrack_app/internal/middleware"
	"github.com/fintrackhq/fintrack_app/internal/platform/config"
	cacherepo "github.com/fintrackhq/fintrack_app/internal/repositories/cache"
	"github.com/fintrackhq/fintrack_app/internal/repositories/memory"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Storage layer: in-memory repositories, optionally wrapped in a
	// read-through cache.
	accountStore := memory.NewAccountRepository()
	categoryStore := memory.NewCategoryRepository()
	operationStore := memory.NewOperationRepository()

	var accounts portsrepo.AccountRepository = accountStore
	var categories portsrepo.CategoryRepository = categoryStore
	if cfg.EnableCache {
		accounts = cacherepo.NewAccountRepository(accountStore, cfg.CacheTTL)
		categories = cacherepo.NewCategoryRepository(categoryStore, cfg.CacheTTL)
		logger.Info("Repository cache enabled", slog.Duration("ttl", cfg.CacheTTL))
	}

	factory := domain.NewFactory(domain.NewSystemClock(), cfg.DefaultCurrency)

	accountService := services.NewAccountService(accounts)
	categoryService := services.NewCategoryService(categories, operationStore, factory)
	operationService := services.NewOperationService(accounts, operationStore, factory)
	reconciliationService := services.NewReconciliationService(accounts, operationStore)
	analyticsService := services.NewAnalyticsService(operationStore, categories)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLogging(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "X-Request-ID")
	corsConfig.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	ipLimiter := limiter.New(limitermem.NewStore(), rate)
	r.Use(middleware.RateLimit(ipLimiter))

	handlers.RegisterRoutes(r, handlers.Dependencies{
		Config:                cfg,
		Factory:               factory,
		Accounts:              accounts,
		Categories:            categories,
		AccountService:        accountService,
		CategoryService:       categoryService,
		OperationService:      operationService,
		ReconciliationService: reconciliationService,
		AnalyticsService:      analyticsService,
		History:               commands.NewHistory(),
	})

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
