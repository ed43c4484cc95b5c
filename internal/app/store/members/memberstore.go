// internal/app/store/members/memberstore.go
package memberstore

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
	return &Store{c: db.Collection("group_members")}
}

// GroupIDsForUser returns the ids of the course's groups the user belongs
// to. course_id is denormalized onto each membership document, so this is a
// single filtered query.
func (s *Store) GroupIDsForUser(ctx context.Context, userID, courseID int64) ([]int64, error) {
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID, "course_id": courseID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []models.GroupMember
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]int64, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.GroupID)
	}
	return out, nil
}

// UserIDs returns the ids of a group's members in ascending id order.
func (s *Store) UserIDs(ctx context.Context, groupID int64) ([]int64, error) {
	opts := options.Find().SetSort(bson.D{{Key: "user_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"group_id": groupID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []models.GroupMember
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]int64, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.UserID)
	}
	return out, nil
}

// Add records one user's membership in a group, once. Used by data import
// and test fixtures.
func (s *Store) Add(ctx context.Context, m models.GroupMember) error {
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx,
		bson.M{"group_id": m.GroupID, "user_id": m.UserID},
		bson.M{"$setOnInsert": bson.M{
			"group_id":   m.GroupID,
			"course_id":  m.CourseID,
			"user_id":    m.UserID,
			"created_at": time.Now().UTC(),
		}},
		opts)
	return err
}
