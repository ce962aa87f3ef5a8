package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AnasIqbal56/Banking-App/internal/services"
	"github.com/AnasIqbal56/Banking-App/internal/views"
)

type BillHandler struct {
	logger  *zap.Logger
	service services.BillService
}

func NewBillHandler(logger *zap.Logger, svc services.BillService) *BillHandler {
	return &BillHandler{logger: logger, service: svc}
}

func (h *BillHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/bills", h.CreateBill)
	r.GET("/bills", h.ListBills)
	r.POST("/bills/pay", h.PayBill)
	r.DELETE("/bills/:id", h.DeleteBill)
}

func (h *BillHandler) CreateBill(c *gin.Context) {
	traceID, userID, ok := requestScope(c, h.logger)
	if !ok {
		return
	}

	var req views.BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body", err)
		return
	}

	bill, err := h.service.CreateBill(c.Request.Context(), traceID, userID, req)
	if err != nil {
		respondError(c, h.logger, traceID, err)
		return
	}
	c.JSON(http.StatusCreated, bill)
}

func (h *BillHandler) ListBills(c *gin.Context) {
	traceID, userID, ok := requestScope(c, h.logger)
	if !ok {
		return
	}

	bills, err := h.service.ListBills(c.Request.Context(), traceID, userID)
	if err != nil {
		respondError(c, h.logger, traceID, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (h *BillHandler) PayBill(c *gin.Context) {
	traceID, userID, ok := requestScope(c, h.logger)
	if !ok {
		return
	}

	var req views.BillPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body", err)
		return
	}

	bill, err := h.service.PayBill(c.Request.Context(), traceID, userID, req)
	if err != nil {
		respondError(c, h.logger, traceID, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (h *BillHandler) DeleteBill(c *gin.Context) {
	traceID, userID, ok := requestScope(c, h.logger)
	if !ok {
		return
	}
	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid bill id", err)
		return
	}

	if err = h.service.DeleteBill(c.Request.Context(), traceID, userID, billID); err != nil {
		respondError(c, h.logger, traceID, err)
		return
	}
	c.Status(http.StatusNoContent)
}
