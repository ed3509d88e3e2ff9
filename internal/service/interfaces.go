package service

import (
	"context"

	"github.com/codehire/codehire-api/internal/dto"
)

// AuthService defines the account/session orchestration operations
type AuthService interface {
	// SendOTP issues a fresh verification code for the email and delivers
	// it out-of-band, invalidating any previously issued codes.
	SendOTP(ctx context.Context, email string) error
	// Signup consumes a valid OTP, creates the account and mints a session
	Signup(ctx context.Context, req *dto.SignupRequest) (*AuthResult, error)
	// Login verifies credentials and mints a session
	Login(ctx context.Context, req *dto.LoginRequest) (*AuthResult, error)
	// VerifySession validates a session token and returns the subject user id
	VerifySession(token string) (string, error)
	// GetUser fetches the profile for a verified session subject
	GetUser(ctx context.Context, userID string) (*dto.UserInfo, error)
	// ChangePassword re-verifies the current password before rehashing
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
}

// AuthResult carries the authenticated user and the session token the
// handler sets as a cookie.
type AuthResult struct {
	User  dto.UserInfo
	Token string
}

// ActivityService defines the activity ledger operations
type ActivityService interface {
	Track(ctx context.Context, userID string, req *dto.TrackActivityRequest) (*dto.TrackActivityResponse, error)
	Stats(ctx context.Context, userID string) (*dto.StatsResponse, error)
}
