package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AnasIqbal56/Banking-App/pkg"
	"github.com/AnasIqbal56/Banking-App/pkg/utils"
)

// requestScope pulls the trace id and resolved caller id out of the gin
// context. Both are set by middleware; absence is a wiring bug, not a user
// error.
func requestScope(c *gin.Context, logger *zap.Logger) (traceID string, userID uuid.UUID, ok bool) {
	traceID, err := utils.GetTraceID(c)
	if err != nil {
		logger.Error("missing trace id", zap.Error(err))
		c.JSON(pkg.ErrServerCode.Status, pkg.ErrorResponse{
			Code:    pkg.ErrServerCode.Code,
			Message: pkg.ErrServerCode.Message,
		})
		return "", uuid.Nil, false
	}
	userID, err = utils.GetUserID(c)
	if err != nil {
		logger.Error("missing user id", zap.String(pkg.TraceId, traceID), zap.Error(err))
		c.JSON(pkg.ErrServerCode.Status, pkg.ErrorResponse{
			Code:    pkg.ErrServerCode.Code,
			Message: pkg.ErrServerCode.Message,
		})
		return "", uuid.Nil, false
	}
	return traceID, userID, true
}

func respondError(c *gin.Context, logger *zap.Logger, traceID string, err error) {
	resp := pkg.ToErrorResponse(logger, traceID, err)
	c.JSON(resp.Status, resp)
}

func respondBadRequest(c *gin.Context, message string, err error) {
	resp := pkg.ErrorResponse{
		Code:    pkg.ErrInvalidInputCode.Code,
		Message: message,
	}
	if pkg.ExposeErrorDetails && err != nil {
		resp.Details = err.Error()
	}
	c.JSON(pkg.ErrInvalidInputCode.Status, resp)
}
