package dto

import "github.com/codehire/codehire-api/internal/domain"

// UserInfo represents user information in responses
type UserInfo struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// AuthResponse is returned by signup and login alongside the session cookie
type AuthResponse struct {
	User  UserInfo `json:"user"`
	Token string   `json:"token"`
}

// MeResponse wraps the current user; User is null without a valid session
type MeResponse struct {
	User *UserInfo `json:"user"`
}

// MessageResponse represents a simple success response
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// TrackActivityResponse returns the activity record after an upsert
type TrackActivityResponse struct {
	Success  bool                 `json:"success"`
	Activity *domain.UserActivity `json:"activity"`
}

// StatsResponse mirrors the profile stats payload. Every field defaults to
// zero/null for users with no recorded activity.
type StatsResponse struct {
	CodeReviewsCount     int64    `json:"codeReviewsCount"`
	ResumeAnalysesCount  int64    `json:"resumeAnalysesCount"`
	LastCodeReviewAt     *string  `json:"lastCodeReviewAt"`
	LastResumeAnalysisAt *string  `json:"lastResumeAnalysisAt"`
	LastResumeScore      *float64 `json:"lastResumeScore"`
	LastCodeReviewScore  *float64 `json:"lastCodeReviewScore"`
}

// ErrorResponse is the error envelope; Errors carries per-field messages
// for form-level consumers.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors,omitempty"`
}
