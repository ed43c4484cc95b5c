// internal/domain/models/groupmember.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GroupMember is the authoritative join between users and groups.
// Exactly one document per (group_id, user_id). CourseID is denormalized
// from the group so a viewer's groups within a course are one query away.
type GroupMember struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GroupID  int64              `bson:"group_id" json:"group_id"`
	CourseID int64              `bson:"course_id" json:"course_id"`
	UserID   int64              `bson:"user_id" json:"user_id"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
