// internal/app/store/groups/groupstore.go
package groupstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/coursefaces/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateGroupName = errors.New("a group with this name already exists in the course")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("groups")}
}

// GroupByID looks up a single group. A missing id is (zero, false, nil),
// not an error; request parameters routinely carry ids that no longer exist.
func (s *Store) GroupByID(ctx context.Context, id int64) (models.Group, bool, error) {
	var g models.Group
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Group{}, false, nil
		}
		return models.Group{}, false, err
	}
	return g, true, nil
}

// CourseGroups lists every group in a course ordered by folded name, then id.
func (s *Store) CourseGroups(ctx context.Context, courseID int64) ([]models.Group, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"course_id": courseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Group
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GroupingGroups lists the groups of a course that belong to one grouping,
// ordered by folded name, then id.
func (s *Store) GroupingGroups(ctx context.Context, courseID, groupingID int64) ([]models.Group, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{
		"course_id":    courseID,
		"grouping_ids": groupingID,
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Group
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert writes a group keyed by its external id. Used by data import and
// test fixtures.
func (s *Store) Upsert(ctx context.Context, g models.Group) error {
	now := time.Now().UTC()
	set := bson.M{
		"course_id":    g.CourseID,
		"name":         g.Name,
		"name_ci":      text.Fold(g.Name),
		"grouping_ids": g.GroupingIDs,
		"updated_at":   now,
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateByID(ctx, g.ID, bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"created_at": now},
	}, opts)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateGroupName
		}
		return err
	}
	return nil
}
