package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/codehire/codehire-api/internal/domain"
	"github.com/codehire/codehire-api/pkg/database"
)

// activityRepository implements ActivityRepository on the useractivities collection
type activityRepository struct {
	col *mongo.Collection
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *database.Mongo) ActivityRepository {
	return &activityRepository{col: db.Collection(activitiesCollection)}
}

// Upsert applies the event as a single find-and-modify so two concurrent
// events for the same user serialize at the storage layer: both increments
// land, last-at reflects whichever write applied last.
func (r *activityRepository) Upsert(ctx context.Context, userID primitive.ObjectID, kind domain.ActivityKind, score *float64) (*domain.UserActivity, error) {
	now := time.Now()

	var counterField, lastAtField, lastScoreField string
	switch kind {
	case domain.ActivityCodeReview:
		counterField = "code_reviews_count"
		lastAtField = "last_code_review_at"
		lastScoreField = "last_code_review_score"
	case domain.ActivityResumeAnalysis:
		counterField = "resume_analyses_count"
		lastAtField = "last_resume_analysis_at"
		lastScoreField = "last_resume_score"
	default:
		return nil, fmt.Errorf("unknown activity kind %q", kind)
	}

	set := bson.M{
		lastAtField:  now,
		"updated_at": now,
	}
	if score != nil {
		set[lastScoreField] = *score
	}

	update := bson.M{
		"$inc":         bson.M{counterField: 1},
		"$set":         set,
		"$setOnInsert": bson.M{"user_id": userID},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	activity := &domain.UserActivity{}
	err := r.col.FindOneAndUpdate(ctx, bson.M{"user_id": userID}, update, opts).Decode(activity)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert activity: %w", err)
	}

	return activity, nil
}

// GetByUserID retrieves the activity record for a user
func (r *activityRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.UserActivity, error) {
	activity := &domain.UserActivity{}
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(activity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("no activity for user %s: %w", userID.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	return activity, nil
}
