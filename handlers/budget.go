package handlers

import (
	"errors"
	"net/http"

	"github.com/fintrack-dev/fintrack-api/middleware"
	"github.com/fintrack-dev/fintrack-api/models"
	"github.com/fintrack-dev/fintrack-api/services"
	"github.com/fintrack-dev/fintrack-api/utils"

	"github.com/gin-gonic/gin"
)

type BudgetHandler struct {
	Service *services.BudgetService
	WS      *WSHandler
}

func NewBudgetHandler(service *services.BudgetService, ws *WSHandler) *BudgetHandler {
	return &BudgetHandler{Service: service, WS: ws}
}

func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	budget, err := h.Service.Create(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid budget"})
		return
	}

	utils.LogEntityAction("Budget", "create", budget.ID, userID)
	h.WS.BroadcastUpdate(userID, "budget_created")

	c.JSON(http.StatusCreated, budget)
}

func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	budgets, err := h.Service.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch budgets"})
		return
	}

	if budgets == nil {
		budgets = []models.Budget{}
	}
	c.JSON(http.StatusOK, budgets)
}

// GetProgress reports spent and remaining amounts for each budget's current
// period.
func (h *BudgetHandler) GetProgress(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	progress, err := h.Service.Progress(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute progress"})
		return
	}

	if progress == nil {
		progress = []models.BudgetProgress{}
	}
	c.JSON(http.StatusOK, progress)
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID := middleware.GetUserID(c)

	budget, err := h.Service.Get(c.Request.Context(), userID, c.Param("id"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch budget"})
		return
	}

	c.JSON(http.StatusOK, budget)
}

func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req models.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	budget, err := h.Service.Update(c.Request.Context(), userID, c.Param("id"), req)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid budget"})
		return
	}

	utils.LogEntityAction("Budget", "update", budget.ID, userID)
	h.WS.BroadcastUpdate(userID, "budget_updated")

	c.JSON(http.StatusOK, budget)
}

func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	userID := middleware.GetUserID(c)
	budgetID := c.Param("id")

	err := h.Service.Delete(c.Request.Context(), userID, budgetID)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete budget"})
		return
	}

	utils.LogEntityAction("Budget", "delete", budgetID, userID)
	h.WS.BroadcastUpdate(userID, "budget_deleted")

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
