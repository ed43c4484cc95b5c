// internal/app/store/groupings/groupingstore.go
package groupingstore

import (
	"context"
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
	return &Store{c: db.Collection("groupings")}
}

// CourseGroupings lists a course's groupings in presentation order:
// sort_order first, id as the tiebreaker. The catalog on the faces pages
// follows this order.
func (s *Store) CourseGroupings(ctx context.Context, courseID int64) ([]models.Grouping, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"course_id": courseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Grouping
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert writes a grouping keyed by its external id. Used by data import and
// test fixtures.
func (s *Store) Upsert(ctx context.Context, gr models.Grouping) error {
	now := time.Now().UTC()
	set := bson.M{
		"course_id":  gr.CourseID,
		"name":       gr.Name,
		"name_ci":    text.Fold(gr.Name),
		"sort_order": gr.SortOrder,
		"updated_at": now,
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateByID(ctx, gr.ID, bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"created_at": now},
	}, opts)
	return err
}
