// internal/domain/models/user.go
package models

import "time"

// User represents admins, teachers, and students.
//
// NOTE:
//   - Course membership lives in the enrolments collection, group
//     membership in group_members.
//   - PictureRev is 0 when the user has no uploaded photo; any other
//     value is a cache-busting revision for the avatar URL.
type User struct {
	ID          int64  `bson:"_id" json:"id"`
	FirstName   string `bson:"firstname" json:"firstname"`
	LastName    string `bson:"lastname" json:"lastname"`
	FirstNameCI string `bson:"firstname_ci" json:"firstname_ci"` // lowercase, diacritics-stripped
	LastNameCI  string `bson:"lastname_ci" json:"lastname_ci"`
	Email       string `bson:"email" json:"email"`
	Role        string `bson:"role" json:"role"` // admin | teacher | student
	Status      string `bson:"status,omitempty" json:"status,omitempty"`
	PictureRev  int64  `bson:"picture_rev,omitempty" json:"picture_rev,omitempty"`

	PasswordHash string `bson:"password_hash,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
