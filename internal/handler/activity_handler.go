package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/codehire/codehire-api/internal/dto"
	"github.com/codehire/codehire-api/internal/service"
)

// ActivityHandler handles activity tracking and profile stats
type ActivityHandler struct {
	activityService service.ActivityService
	logger          *zap.Logger
	production      bool
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService service.ActivityService, logger *zap.Logger, production bool) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		logger:          logger,
		production:      production,
	}
}

// Track handles POST /activity/track
func (h *ActivityHandler) Track(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.TrackActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid activity type"})
		return
	}

	result, err := h.activityService.Track(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Stats handles GET /profile/stats
func (h *ActivityHandler) Stats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	stats, err := h.activityService.Stats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, h.production, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
