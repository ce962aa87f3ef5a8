package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AnasIqbal56/Banking-App/internal/services"
	"github.com/AnasIqbal56/Banking-App/internal/views"
)

type AccountHandler struct {
	logger  *zap.Logger
	service services.AccountService
}

func NewAccountHandler(logger *zap.Logger, svc services.AccountService) *AccountHandler {
	return &AccountHandler{logger: logger, service: svc}
}

func (h *AccountHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/accounts", h.CreateAccount)
	r.GET("/accounts", h.ListAccounts)
	r.GET("/accounts/:id", h.GetAccount)
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	traceID, userID, ok := requestScope(c, h.logger)
	if !ok {
		return
	}

	var req views.AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body", err)
		return
	}

	account, err := h.service.CreateAccount(c.Request.Context(), traceID, userID, req)
	if err != nil {
		respondError(c, h.logger, traceID, err)
		return
	}
	c.JSON(http.StatusCreated, account)
}

func (h *AccountHandler) ListAccounts(c *gin.Context) {
	traceID, userID, ok := requestScope(c, h.logger)
	if !ok {
		return
	}

	accounts, err := h.service.ListAccounts(c.Request.Context(), traceID, userID)
	if err != nil {
		respondError(c, h.logger, traceID, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	traceID, userID, ok := requestScope(c, h.logger)
	if !ok {
		return
	}
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid account id", err)
		return
	}

	account, err := h.service.GetAccount(c.Request.Context(), traceID, userID, accountID)
	if err != nil {
		respondError(c, h.logger, traceID, err)
		return
	}
	c.JSON(http.StatusOK, account)
}
