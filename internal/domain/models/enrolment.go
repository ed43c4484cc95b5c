// internal/domain/models/enrolment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enrolment statuses. Suspended enrolments are excluded from rosters.
const (
	EnrolmentActive    = "active"
	EnrolmentSuspended = "suspended"
)

// Enrolment links a user to a course. Exactly one document per
// (course_id, user_id).
type Enrolment struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CourseID int64              `bson:"course_id" json:"course_id"`
	UserID   int64              `bson:"user_id" json:"user_id"`
	Status   string             `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
