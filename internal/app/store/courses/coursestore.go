// internal/app/store/courses/coursestore.go
package coursestore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/coursefaces/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("courses")}
}

// GetByID looks up a course. A missing id returns (zero, false, nil) so
// callers can render not-found pages without inspecting driver errors.
func (s *Store) GetByID(ctx context.Context, id int64) (models.Course, bool, error) {
	var c models.Course
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Course{}, false, nil
		}
		return models.Course{}, false, err
	}
	return c, true, nil
}

// ListActive lists every active course ordered by full name, then id.
func (s *Store) ListActive(ctx context.Context) ([]models.Course, error) {
	opts := options.Find().SetSort(bson.D{{Key: "fullname", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"status": models.CourseActive}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Course
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByIDs lists the active courses among ids, ordered by full name.
func (s *Store) ListByIDs(ctx context.Context, ids []int64) ([]models.Course, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "fullname", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{
		"_id":    bson.M{"$in": ids},
		"status": models.CourseActive,
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Course
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert writes a course keyed by its external id. Used by data import and
// test fixtures.
func (s *Store) Upsert(ctx context.Context, c models.Course) error {
	now := time.Now().UTC()
	if c.Status == "" {
		c.Status = models.CourseActive
	}
	set := bson.M{
		"fullname":   c.FullName,
		"shortname":  c.ShortName,
		"group_mode": c.GroupMode,
		"status":     c.Status,
		"updated_at": now,
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateByID(ctx, c.ID, bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"created_at": now},
	}, opts)
	return err
}
