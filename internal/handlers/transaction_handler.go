package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AnasIqbal56/Banking-App/internal/services"
	"github.com/AnasIqbal56/Banking-App/internal/views"
)

type TransactionHandler struct {
	logger  *zap.Logger
	service services.LedgerService
}

func NewTransactionHandler(logger *zap.Logger, svc services.LedgerService) *TransactionHandler {
	return &TransactionHandler{logger: logger, service: svc}
}

func (h *TransactionHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/accounts/:id/transactions", h.CreateTransaction)
	r.GET("/accounts/:id/transactions", h.ListTransactions)
}

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	traceID, userID, ok := requestScope(c, h.logger)
	if !ok {
		return
	}
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid account id", err)
		return
	}

	var req views.TransactionRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body", err)
		return
	}

	txn, err := h.service.CreateTransaction(c.Request.Context(), traceID, userID, accountID, req)
	if err != nil {
		respondError(c, h.logger, traceID, err)
		return
	}
	c.JSON(http.StatusCreated, txn)
}

func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	traceID, userID, ok := requestScope(c, h.logger)
	if !ok {
		return
	}
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid account id", err)
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		respondBadRequest(c, "invalid limit", err)
		return
	}

	txns, err := h.service.ListTransactions(c.Request.Context(), traceID, userID, accountID, limit)
	if err != nil {
		respondError(c, h.logger, traceID, err)
		return
	}
	c.JSON(http.StatusOK, txns)
}
