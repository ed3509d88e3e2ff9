package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/codehire/codehire-api/internal/domain"
	"github.com/codehire/codehire-api/internal/dto"
	"github.com/codehire/codehire-api/internal/repository"
)

// activityService implements ActivityService
type activityService struct {
	activityRepo repository.ActivityRepository
}

// NewActivityService creates a new activity service
func NewActivityService(activityRepo repository.ActivityRepository) ActivityService {
	return &activityService{activityRepo: activityRepo}
}

// Track records a tool invocation through a single atomic upsert
func (s *activityService) Track(ctx context.Context, userID string, req *dto.TrackActivityRequest) (*dto.TrackActivityResponse, error) {
	kind := domain.ActivityKind(req.Type)
	if !kind.Valid() {
		return nil, NewValidationError("Invalid activity type", map[string]string{"type": "Invalid activity type"})
	}

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, NewUnauthorizedError("Invalid or expired session")
	}

	activity, err := s.activityRepo.Upsert(ctx, id, kind, req.Score)
	if err != nil {
		return nil, NewDependencyError("Failed to track activity", err)
	}

	return &dto.TrackActivityResponse{Success: true, Activity: activity}, nil
}

// Stats returns zero/null-defaulted stats; a user with no history never errors
func (s *activityService) Stats(ctx context.Context, userID string) (*dto.StatsResponse, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, NewUnauthorizedError("Invalid or expired session")
	}

	stats := &dto.StatsResponse{}

	activity, err := s.activityRepo.GetByUserID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return stats, nil
		}
		return nil, NewDependencyError("Failed to fetch stats", err)
	}

	stats.CodeReviewsCount = activity.CodeReviewsCount
	stats.ResumeAnalysesCount = activity.ResumeAnalysesCount
	stats.LastCodeReviewAt = formatTime(activity.LastCodeReviewAt)
	stats.LastResumeAnalysisAt = formatTime(activity.LastResumeAnalysisAt)
	stats.LastCodeReviewScore = activity.LastCodeReviewScore
	stats.LastResumeScore = activity.LastResumeScore

	return stats, nil
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
