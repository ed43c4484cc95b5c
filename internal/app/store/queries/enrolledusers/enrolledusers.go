// Package enrolledusers holds the roster aggregation: active enrolments
// joined to active users, optionally narrowed to one group's members.
package enrolledusers

import (
	"context"

	memberstore "github.com/dalemusser/coursefaces/internal/app/store/members"
	"github.com/dalemusser/coursefaces/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// List returns the course's enrolled, active users. groupID 0 means no group
// filter; any other value narrows the roster to that group's members.
//
// The database sort is on the folded firstname so pages stay stable across
// requests; presentation-order sorting happens in the roster assembler.
func List(ctx context.Context, db *mongo.Database, courseID, groupID int64) ([]models.User, error) {
	match := bson.M{
		"course_id": courseID,
		"status":    models.EnrolmentActive,
	}
	if groupID > 0 {
		memberIDs, err := memberstore.New(db).UserIDs(ctx, groupID)
		if err != nil {
			return nil, err
		}
		// An empty membership still has to produce an empty roster, and
		// $in with an empty array does exactly that.
		match["user_id"] = bson.M{"$in": memberIDs}
	}

	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "user",
		}}},
		bson.D{{Key: "$unwind", Value: "$user"}},
		bson.D{{Key: "$match", Value: bson.M{"user.status": models.EnrolmentActive}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "user.firstname_ci", Value: 1},
			{Key: "user._id", Value: 1},
		}}},
		bson.D{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$user"}}},
	}

	cur, err := db.Collection("enrolments").Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
