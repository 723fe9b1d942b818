package routes

import (
	"database/sql"

	"github.com/fintrack-dev/fintrack-api/handlers"
	"github.com/fintrack-dev/fintrack-api/services"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up public authentication routes.
func SetupAuthRoutes(rg *gin.RouterGroup, db *sql.DB) {
	authHandler := &handlers.AuthHandler{DB: db}

	rg.POST("/auth/register", authHandler.Register)
	rg.POST("/auth/login", authHandler.Login)
}

// SetupCategoryRoutes sets up protected category routes. Categories are
// global, so none of these are owner-scoped.
func SetupCategoryRoutes(rg *gin.RouterGroup, db *sql.DB) {
	service := services.NewCategoryService(services.NewCategoryStore(db))
	h := handlers.NewCategoryHandler(service)

	rg.POST("/categories", h.CreateCategory)
	rg.GET("/categories", h.GetCategories)
	rg.POST("/categories/seed", h.SeedCategories)
	rg.GET("/categories/:id", h.GetCategory)
	rg.PUT("/categories/:id", h.UpdateCategory)
	rg.DELETE("/categories/:id", h.DeleteCategory)
}

// SetupTransactionRoutes sets up protected transaction routes.
func SetupTransactionRoutes(rg *gin.RouterGroup, db *sql.DB, ws *handlers.WSHandler) {
	service := services.NewTransactionService(services.NewTransactionStore(db))
	h := handlers.NewTransactionHandler(service, ws)

	rg.POST("/transactions", h.CreateTransaction)
	rg.GET("/transactions", h.GetTransactions)
	rg.GET("/transactions/summary", h.GetSummary)
	rg.GET("/transactions/:id", h.GetTransaction)
	rg.PUT("/transactions/:id", h.UpdateTransaction)
	rg.DELETE("/transactions/:id", h.DeleteTransaction)
}

// SetupBudgetRoutes sets up protected budget routes.
func SetupBudgetRoutes(rg *gin.RouterGroup, db *sql.DB, ws *handlers.WSHandler, rollingPeriods bool) {
	service := services.NewBudgetService(services.NewBudgetStore(db), rollingPeriods)
	h := handlers.NewBudgetHandler(service, ws)

	rg.POST("/budgets", h.CreateBudget)
	rg.GET("/budgets", h.GetBudgets)
	rg.GET("/budgets/progress", h.GetProgress)
	rg.GET("/budgets/:id", h.GetBudget)
	rg.PUT("/budgets/:id", h.UpdateBudget)
	rg.DELETE("/budgets/:id", h.DeleteBudget)
}

// SetupUserRoutes sets up protected user profile routes.
func SetupUserRoutes(rg *gin.RouterGroup, db *sql.DB) {
	userHandler := &handlers.UserHandler{DB: db}

	rg.GET("/user/profile", userHandler.GetProfile)
	rg.PUT("/user/profile", userHandler.UpdateProfile)
	rg.POST("/user/password", userHandler.ChangePassword)
	rg.POST("/user/2fa/setup", userHandler.SetupTOTP)
	rg.POST("/user/2fa/verify", userHandler.VerifyTOTP)
	rg.POST("/user/2fa/disable", userHandler.DisableTOTP)
	rg.DELETE("/user/account", userHandler.DeleteAccount)
}
