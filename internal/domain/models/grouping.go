// internal/domain/models/grouping.go
package models

import "time"

// UngroupedID is the reserved grouping id used for the synthetic bucket of
// groups that belong to no grouping. It never appears as a stored _id.
const UngroupedID = 0

// Grouping is a named collection of groups within a course.
type Grouping struct {
	ID        int64  `bson:"_id" json:"id"`
	CourseID  int64  `bson:"course_id" json:"course_id"`
	Name      string `bson:"name" json:"name"`
	NameCI    string `bson:"name_ci" json:"name_ci"`
	SortOrder int    `bson:"sort_order" json:"sort_order"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
