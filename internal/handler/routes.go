package handler

import (
	"github.com/finsight/finsight-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, authHandler *AuthHandler, transactionHandler *TransactionHandler, budgetHandler *BudgetHandler, reportHandler *ReportHandler, dashboardHandler *DashboardHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Auth routes (public)
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Everything below requires a bearer token
	protected := api.Group("")
	protected.Use(authMiddleware.Authenticate())
	protected.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Transaction routes
	protected.POST("/transactions", transactionHandler.CreateTransaction)
	protected.GET("/transactions", transactionHandler.GetTransactions)

	// Budget routes
	protected.PUT("/budgets", budgetHandler.SetBudget)
	protected.GET("/budgets/status", budgetHandler.GetBudgetStatus)

	// Report routes
	protected.GET("/reports", reportHandler.GetReport)

	// Dashboard routes
	protected.GET("/dashboard/summary", dashboardHandler.GetSummary)
}
