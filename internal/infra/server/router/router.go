// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/hamsacorp/expense-backend/internal/integration/entrypoint/controller"
	"github.com/hamsacorp/expense-backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	userController        *controller.UserController
	transactionController *controller.TransactionController
	settingsController    *controller.SettingsController
	reportController      *controller.ReportController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	transactionController *controller.TransactionController,
	settingsController *controller.SettingsController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		userController:        userController,
		transactionController: transactionController,
		settingsController:    settingsController,
		reportController:      reportController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		}

		user := api.Group("/user")
		{
			user.GET("/exists", r.userController.Exists)
			user.GET("/me", r.authMiddleware.Authenticate(), r.userController.Me)
		}

		expenses := api.Group("/expenses")
		expenses.Use(r.authMiddleware.Authenticate())
		{
			expenses.GET("", r.transactionController.List)
			expenses.POST("", r.transactionController.Create)
			expenses.PUT("/:id", r.transactionController.Update)
			expenses.DELETE("/:id", r.transactionController.Delete)
		}

		settings := api.Group("/settings")
		settings.Use(r.authMiddleware.Authenticate())
		{
			settings.GET("", r.settingsController.Get)
			settings.PUT("", r.settingsController.Update)
			settings.DELETE("", r.settingsController.Delete)
		}

		reports := api.Group("/reports")
		reports.Use(r.authMiddleware.Authenticate())
		{
			reports.GET("/summary", r.reportController.Summary)
			reports.GET("/daily", r.reportController.Daily)
			reports.GET("/monthly", r.reportController.Monthly)
			reports.GET("/yearly", r.reportController.Yearly)
			reports.GET("/range", r.reportController.Range)
			reports.GET("/recurring-expenses", r.reportController.RecurringExpenses)
		}
	}
}
