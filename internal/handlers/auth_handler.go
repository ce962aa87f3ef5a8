package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AnasIqbal56/Banking-App/internal/services"
	"github.com/AnasIqbal56/Banking-App/internal/views"
	"github.com/AnasIqbal56/Banking-App/pkg/utils"
)

type AuthHandler struct {
	logger  *zap.Logger
	service services.AuthService
}

func NewAuthHandler(logger *zap.Logger, svc services.AuthService) *AuthHandler {
	return &AuthHandler{logger: logger, service: svc}
}

// RegisterPublicRoutes registers the unauthenticated auth endpoints.
func (h *AuthHandler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
}

// RegisterRoutes registers the endpoints behind the auth middleware.
func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/auth/me", h.Me)
}

func (h *AuthHandler) Register(c *gin.Context) {
	traceID, _ := utils.GetTraceID(c)

	var req views.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body", err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), traceID, req)
	if err != nil {
		respondError(c, h.logger, traceID, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	traceID, _ := utils.GetTraceID(c)

	var req views.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body", err)
		return
	}

	token, err := h.service.Login(c.Request.Context(), traceID, req)
	if err != nil {
		respondError(c, h.logger, traceID, err)
		return
	}
	c.JSON(http.StatusOK, token)
}

func (h *AuthHandler) Me(c *gin.Context) {
	traceID, userID, ok := requestScope(c, h.logger)
	if !ok {
		return
	}

	user, err := h.service.CurrentUser(c.Request.Context(), traceID, userID)
	if err != nil {
		respondError(c, h.logger, traceID, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
