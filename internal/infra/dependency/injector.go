// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/hamsacorp/expense-backend/config"
	"github.com/hamsacorp/expense-backend/internal/application/usecase/auth"
	"github.com/hamsacorp/expense-backend/internal/application/usecase/report"
	"github.com/hamsacorp/expense-backend/internal/application/usecase/settings"
	"github.com/hamsacorp/expense-backend/internal/application/usecase/transaction"
	"github.com/hamsacorp/expense-backend/internal/infra/server/router"
	"github.com/hamsacorp/expense-backend/internal/integration/adapters"
	"github.com/hamsacorp/expense-backend/internal/integration/entrypoint/controller"
	"github.com/hamsacorp/expense-backend/internal/integration/entrypoint/middleware"
	"github.com/hamsacorp/expense-backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	settingsDefaults := settings.Defaults{
		Currency:      cfg.Defaults.Currency,
		DateFormat:    cfg.Defaults.DateFormat,
		MonthlyBudget: cfg.Defaults.MonthlyBudget,
	}
	reportDefaults := report.Defaults{
		Currency:      cfg.Defaults.Currency,
		DateFormat:    cfg.Defaults.DateFormat,
		MonthlyBudget: cfg.Defaults.MonthlyBudget,
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	checkEmailUseCase := auth.NewCheckEmailUseCase(userRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)

	// Create settings use cases
	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo, settingsDefaults)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsRepo, settingsDefaults)
	deleteSettingsUseCase := settings.NewDeleteSettingsUseCase(settingsRepo)

	// Create report use cases
	recurringUseCase := report.NewDetectRecurringUseCase(transactionRepo)
	summaryUseCase := report.NewGetSummaryUseCase(transactionRepo)
	dailyReportUseCase := report.NewGetDailyReportUseCase(transactionRepo, settingsRepo, reportDefaults)
	monthlyReportUseCase := report.NewGetMonthlyReportUseCase(transactionRepo, settingsRepo, recurringUseCase, reportDefaults)
	yearlyReportUseCase := report.NewGetYearlyReportUseCase(transactionRepo, settingsRepo, recurringUseCase, reportDefaults)
	rangeReportUseCase := report.NewGetRangeReportUseCase(transactionRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	userController := controller.NewUserController(checkEmailUseCase)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		listTransactionsUseCase,
	)
	settingsController := controller.NewSettingsController(
		getSettingsUseCase,
		updateSettingsUseCase,
		deleteSettingsUseCase,
	)
	reportController := controller.NewReportController(
		summaryUseCase,
		dailyReportUseCase,
		monthlyReportUseCase,
		yearlyReportUseCase,
		rangeReportUseCase,
		recurringUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		userController,
		transactionController,
		settingsController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
