// internal/app/bootstrap/admin.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/coursefaces/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ensureAdmin creates or promotes the configured admin account so a fresh
// deployment has a way in. An existing user keeps their password; a created
// one gets the configured initial password.
func ensureAdmin(ctx context.Context, deps DBDeps, email, password string, logger *zap.Logger) error {
	coll := deps.MongoDatabase.Collection("users")
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	err := coll.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	switch {
	case err == nil:
		if existing.Role == "admin" {
			return nil
		}
		_, err = coll.UpdateByID(ctx, existing.ID, bson.M{"$set": bson.M{
			"role":       "admin",
			"updated_at": time.Now().UTC(),
		}})
		if err != nil {
			return fmt.Errorf("promote admin: %w", err)
		}
		logger.Info("promoted existing user to admin", zap.String("email", email))
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		// fall through to create
	default:
		return fmt.Errorf("find admin: %w", err)
	}

	id, err := nextUserID(ctx, coll)
	if err != nil {
		return err
	}

	hash := ""
	if password != "" {
		b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		hash = string(b)
	}

	now := time.Now().UTC()
	u := models.User{
		ID:           id,
		FirstName:    "Site",
		LastName:     "Admin",
		FirstNameCI:  text.Fold("Site"),
		LastNameCI:   text.Fold("Admin"),
		Email:        email,
		Role:         "admin",
		Status:       models.EnrolmentActive,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := coll.InsertOne(ctx, u); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	logger.Info("created admin user", zap.String("email", email), zap.Int64("id", id))
	return nil
}

// nextUserID returns one past the highest user id. Imported LMS users keep
// their source ids; locally created accounts slot in above them.
func nextUserID(ctx context.Context, coll *mongo.Collection) (int64, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})
	var top models.User
	err := coll.FindOne(ctx, bson.M{}, opts).Decode(&top)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return 1, nil
	case err != nil:
		return 0, fmt.Errorf("find max user id: %w", err)
	}
	return top.ID + 1, nil
}
