// internal/app/store/enrolments/enrolmentstore.go
package enrolmentstore

import (
	"context"
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
	return &Store{c: db.Collection("enrolments")}
}

// HasActive reports whether the user holds an active enrolment in the
// course. Suspended enrolments do not count.
func (s *Store) HasActive(ctx context.Context, courseID, userID int64) (bool, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{
		"course_id": courseID,
		"user_id":   userID,
		"status":    models.EnrolmentActive,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CourseIDsForUser returns the ids of the courses the user is actively
// enrolled in.
func (s *Store) CourseIDsForUser(ctx context.Context, userID int64) ([]int64, error) {
	cur, err := s.c.Find(ctx, bson.M{
		"user_id": userID,
		"status":  models.EnrolmentActive,
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []models.Enrolment
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]int64, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.CourseID)
	}
	return out, nil
}

// Upsert records one enrolment per (course, user). Used by data import and
// test fixtures.
func (s *Store) Upsert(ctx context.Context, e models.Enrolment) error {
	if e.Status == "" {
		e.Status = models.EnrolmentActive
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx,
		bson.M{"course_id": e.CourseID, "user_id": e.UserID},
		bson.M{
			"$set":         bson.M{"status": e.Status},
			"$setOnInsert": bson.M{"created_at": time.Now().UTC()},
		},
		opts)
	return err
}
