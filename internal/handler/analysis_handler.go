package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/codehire/codehire-api/internal/analysis"
	"github.com/codehire/codehire-api/internal/dto"
	"github.com/codehire/codehire-api/internal/service"
)

const (
	minResumeTextLength = 50
	maxResumeTextLength = 10000
)

// AnalysisHandler handles the two AI tool endpoints. Provider failures map
// to 502; successful runs are recorded in the activity ledger.
type AnalysisHandler struct {
	provider        analysis.Provider
	activityService service.ActivityService
	logger          *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(provider analysis.Provider, activityService service.ActivityService, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		provider:        provider,
		activityService: activityService,
		logger:          logger,
	}
}

// CodeReview handles POST /code-review
func (h *AnalysisHandler) CodeReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CodeReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Code is required"})
		return
	}

	review, err := h.provider.ReviewCode(c.Request.Context(), req.Code, req.Language)
	if err != nil {
		h.logger.Error("code review failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "Analysis is temporarily unavailable. Please try again."})
		return
	}

	h.recordActivity(c, userID, "code_review", review.Score)
	c.JSON(http.StatusOK, review)
}

// ResumeAnalysis handles POST /resume-analysis. Plain text only; the
// original product's PDF byte-scraping stayed out of scope.
func (h *AnalysisHandler) ResumeAnalysis(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ResumeAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Text) < minResumeTextLength {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Resume text is too short. Please provide the resume's readable text content.",
		})
		return
	}

	text := req.Text
	if len(text) > maxResumeTextLength {
		text = text[:maxResumeTextLength] + "..."
	}

	report, err := h.provider.AnalyzeResume(c.Request.Context(), text)
	if err != nil {
		h.logger.Error("resume analysis failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "Analysis is temporarily unavailable. Please try again."})
		return
	}

	h.recordActivity(c, userID, "resume_analysis", report.ATSScore)
	c.JSON(http.StatusOK, report)
}

// recordActivity updates the ledger; a tracking failure must not fail the
// tool response the user already paid the model latency for.
func (h *AnalysisHandler) recordActivity(c *gin.Context, userID, kind string, score float64) {
	_, err := h.activityService.Track(c.Request.Context(), userID, &dto.TrackActivityRequest{
		Type:  kind,
		Score: &score,
	})
	if err != nil {
		h.logger.Warn("failed to record activity",
			zap.String("kind", kind),
			zap.Error(err),
		)
	}
}
