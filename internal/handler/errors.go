package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/codehire/codehire-api/internal/dto"
	"github.com/codehire/codehire-api/internal/service"
)

// respondError maps a service error onto the JSON envelope. Service error
// messages are written for clients; the underlying cause is only logged.
// Unexpected errors surface generically, with detail outside production.
func respondError(c *gin.Context, logger *zap.Logger, production bool, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		if svcErr.Status >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
		}
		c.JSON(svcErr.Status, dto.ErrorResponse{Error: svcErr.Message, Errors: svcErr.Fields})
		return
	}

	logger.Error("unexpected error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	msg := "Something went wrong. Please try again."
	if !production {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msg})
}
