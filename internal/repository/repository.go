package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/codehire/codehire-api/pkg/database"
)

// Collection names
const (
	usersCollection      = "users"
	otpsCollection       = "otpverifications"
	activitiesCollection = "useractivities"
)

// Repositories holds all repository interfaces
type Repositories struct {
	User     UserRepository
	Otp      OtpRepository
	Activity ActivityRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *database.Mongo) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Otp:      NewOtpRepository(db),
		Activity: NewActivityRepository(db),
	}
}

// EnsureIndexes creates the indexes the stores rely on. Run once at startup
// before serving: the unique email and user_id indexes back the Conflict and
// one-record-per-user invariants.
func EnsureIndexes(ctx context.Context, db *database.Mongo) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users email index: %w", err)
	}

	_, err = db.Collection(otpsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}, {Key: "otp", Value: 1}},
		},
		{
			// Expired codes are already excluded at query time; the TTL
			// sweep just keeps the collection from accumulating dead rows.
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32((24 * time.Hour).Seconds())),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create otp indexes: %w", err)
	}

	_, err = db.Collection(activitiesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create activities user_id index: %w", err)
	}

	return nil
}
