package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/codehire/codehire-api/internal/domain"
)

// UserRepository defines methods for credential store operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// GetByEmail looks up a user by normalized email. The password hash is
	// included only when withPassword is set; default reads never carry it.
	GetByEmail(ctx context.Context, email string, withPassword bool) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, newHash string) error
}

// OtpRepository defines methods for verification code storage
type OtpRepository interface {
	Create(ctx context.Context, rec *domain.OtpVerification) error
	// FindValid matches (email, code) with expiry strictly in the future
	FindValid(ctx context.Context, email, code string) (*domain.OtpVerification, error)
	DeleteByEmail(ctx context.Context, email string) error
}

// ActivityRepository defines methods for the per-user activity ledger
type ActivityRepository interface {
	// Upsert atomically increments the counter for kind, stamps last-at and
	// optionally last-score, creating the record if absent. Returns the
	// post-update document.
	Upsert(ctx context.Context, userID primitive.ObjectID, kind domain.ActivityKind, score *float64) (*domain.UserActivity, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.UserActivity, error)
}
