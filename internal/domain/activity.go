package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityKind identifies a tracked tool invocation
type ActivityKind string

const (
	ActivityCodeReview     ActivityKind = "code_review"
	ActivityResumeAnalysis ActivityKind = "resume_analysis"
)

// Valid reports whether the kind is one of the known tool types
func (k ActivityKind) Valid() bool {
	return k == ActivityCodeReview || k == ActivityResumeAnalysis
}

// UserActivity holds per-user tool usage counters. Exactly one record per
// user; created lazily by the first tracked event.
type UserActivity struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID               primitive.ObjectID `json:"userId" bson:"user_id"`
	CodeReviewsCount     int64              `json:"codeReviewsCount" bson:"code_reviews_count"`
	ResumeAnalysesCount  int64              `json:"resumeAnalysesCount" bson:"resume_analyses_count"`
	LastCodeReviewAt     *time.Time         `json:"lastCodeReviewAt" bson:"last_code_review_at,omitempty"`
	LastResumeAnalysisAt *time.Time         `json:"lastResumeAnalysisAt" bson:"last_resume_analysis_at,omitempty"`
	LastCodeReviewScore  *float64           `json:"lastCodeReviewScore" bson:"last_code_review_score,omitempty"`
	LastResumeScore      *float64           `json:"lastResumeScore" bson:"last_resume_score,omitempty"`
	UpdatedAt            time.Time          `json:"updatedAt" bson:"updated_at"`
}
