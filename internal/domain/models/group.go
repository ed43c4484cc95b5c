// internal/domain/models/group.go
package models

import "time"

// Group is a named subset of a course's enrolled users.
//
// NOTE:
//   - Membership is not embedded on Group. Use the group_members
//     collection to discover a group's users.
//   - GroupingIDs lists the groupings this group belongs to; a group in
//     no grouping surfaces in the synthetic "ungrouped" bucket.
type Group struct {
	ID          int64   `bson:"_id" json:"id"`
	CourseID    int64   `bson:"course_id" json:"course_id"`
	Name        string  `bson:"name" json:"name"`
	NameCI      string  `bson:"name_ci" json:"name_ci"`
	GroupingIDs []int64 `bson:"grouping_ids,omitempty" json:"grouping_ids,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
