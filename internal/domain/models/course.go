// internal/domain/models/course.go
package models

import "time"

// Group modes for a course. The mode controls whether a viewer without the
// access-all-groups capability can see groups they are not a member of.
const (
	GroupModeNone     = 0
	GroupModeSeparate = 1
	GroupModeVisible  = 2
)

// Course statuses.
const (
	CourseActive   = "active"
	CourseArchived = "archived"
)

// Course is the enrollment unit the roster is scoped to.
//
// Courses keep the numeric ids of the source LMS as their Mongo _id so that
// roster URLs and group references stay stable across imports.
type Course struct {
	ID        int64  `bson:"_id" json:"id"`
	FullName  string `bson:"fullname" json:"fullname"`
	ShortName string `bson:"shortname" json:"shortname"`
	GroupMode int    `bson:"group_mode" json:"group_mode"`

	Status string `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
