package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/codehire/codehire-api/internal/domain"
	"github.com/codehire/codehire-api/pkg/database"
)

// otpRepository implements OtpRepository on the otpverifications collection
type otpRepository struct {
	col *mongo.Collection
}

// NewOtpRepository creates a new OTP repository
func NewOtpRepository(db *database.Mongo) OtpRepository {
	return &otpRepository{col: db.Collection(otpsCollection)}
}

// Create stores a new verification code
func (r *otpRepository) Create(ctx context.Context, rec *domain.OtpVerification) error {
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	if _, err := r.col.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("failed to create otp record: %w", err)
	}

	return nil
}

// FindValid matches (email, code) with expiry strictly in the future.
// Expired rows never match; they are harmless until the TTL sweep removes them.
func (r *otpRepository) FindValid(ctx context.Context, email, code string) (*domain.OtpVerification, error) {
	rec := &domain.OtpVerification{}
	err := r.col.FindOne(ctx, bson.M{
		"email":      email,
		"otp":        code,
		"expires_at": bson.M{"$gt": time.Now()},
	}).Decode(rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("no valid otp for %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find otp: %w", err)
	}

	return rec, nil
}

// DeleteByEmail removes every code for an email, matched or not. Called both
// before issuing a new code and after a consumption attempt so at most one
// usable code exists per email.
func (r *otpRepository) DeleteByEmail(ctx context.Context, email string) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{"email": email}); err != nil {
		return fmt.Errorf("failed to delete otp records: %w", err)
	}
	return nil
}
