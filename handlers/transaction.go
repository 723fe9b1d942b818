package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fintrack-dev/fintrack-api/middleware"
	"github.com/fintrack-dev/fintrack-api/models"
	"github.com/fintrack-dev/fintrack-api/services"
	"github.com/fintrack-dev/fintrack-api/utils"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	Service *services.TransactionService
	WS      *WSHandler
}

func NewTransactionHandler(service *services.TransactionService, ws *WSHandler) *TransactionHandler {
	return &TransactionHandler{Service: service, WS: ws}
}

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.Service.Create(c.Request.Context(), userID, req)
	if errors.Is(err, services.ErrInvalidAmount) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction"})
		return
	}

	utils.LogEntityAction("Transaction", "create", transaction.ID, userID)
	h.WS.BroadcastUpdate(userID, "transaction_created")

	c.JSON(http.StatusCreated, transaction)
}

func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	transactions, err := h.Service.List(c.Request.Context(), userID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}

	if transactions == nil {
		transactions = []models.Transaction{}
	}
	c.JSON(http.StatusOK, transactions)
}

// GetSummary totals income and expenses for an explicit date range.
func (h *TransactionHandler) GetSummary(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	start, err := services.ParseDate(c.Query("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be YYYY-MM-DD"})
		return
	}
	end, err := services.ParseDate(c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be YYYY-MM-DD"})
		return
	}

	summary, err := h.Service.Summary(c.Request.Context(), userID, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	userID := middleware.GetUserID(c)

	transaction, err := h.Service.Get(c.Request.Context(), userID, c.Param("id"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transaction"})
		return
	}

	c.JSON(http.StatusOK, transaction)
}

func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req models.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.Service.Update(c.Request.Context(), userID, c.Param("id"), req)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	if errors.Is(err, services.ErrInvalidAmount) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction"})
		return
	}

	utils.LogEntityAction("Transaction", "update", transaction.ID, userID)
	h.WS.BroadcastUpdate(userID, "transaction_updated")

	c.JSON(http.StatusOK, transaction)
}

func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID := middleware.GetUserID(c)
	transactionID := c.Param("id")

	err := h.Service.Delete(c.Request.Context(), userID, transactionID)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}

	utils.LogEntityAction("Transaction", "delete", transactionID, userID)
	h.WS.BroadcastUpdate(userID, "transaction_deleted")

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
