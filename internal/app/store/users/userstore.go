// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/coursefaces/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByID looks up a user. A missing id returns (zero, false, nil).
func (s *Store) GetByID(ctx context.Context, id int64) (models.User, bool, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, false, nil
		}
		return models.User{}, false, err
	}
	return u, true, nil
}

// FindByEmail looks up a user by email, case-insensitively. Sign-in uses
// this; a miss is (zero, false, nil).
func (s *Store) FindByEmail(ctx context.Context, email string) (models.User, bool, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, false, nil
		}
		return models.User{}, false, err
	}
	return u, true, nil
}

// Upsert writes a user keyed by its external id. Name *_ci fields are folded
// here so sorts done in the database agree with in-process collation. Used by
// data import and test fixtures.
func (s *Store) Upsert(ctx context.Context, u models.User) error {
	now := time.Now().UTC()
	if u.Status == "" {
		u.Status = models.EnrolmentActive
	}
	set := bson.M{
		"firstname":    u.FirstName,
		"lastname":     u.LastName,
		"firstname_ci": text.Fold(u.FirstName),
		"lastname_ci":  text.Fold(u.LastName),
		"email":        strings.ToLower(strings.TrimSpace(u.Email)),
		"role":         u.Role,
		"status":       u.Status,
		"picture_rev":  u.PictureRev,
		"updated_at":   now,
	}
	if u.PasswordHash != "" {
		set["password_hash"] = u.PasswordHash
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateByID(ctx, u.ID, bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"created_at": now},
	}, opts)
	return err
}

// UpdatePassword replaces the stored password hash.
func (s *Store) UpdatePassword(ctx context.Context, id int64, hash string) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"password_hash": hash,
		"updated_at":    time.Now().UTC(),
	}})
	return err
}
