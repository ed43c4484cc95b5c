package roster

import "fmt"

// PhotoSize is the rendered avatar edge length in pixels on faces pages.
const PhotoSize = 100

// defaultPhoto is served for users without an uploaded photo.
const defaultPhoto = "/static/img/default-avatar.svg"

// PhotoURL returns the avatar URL for a user. rev is the picture revision
// stored on the user document; 0 means no custom photo. The revision rides
// along as a cache buster so replaced photos show up immediately.
func PhotoURL(userID, rev int64, size int) string {
	if rev == 0 {
		return defaultPhoto
	}
	return fmt.Sprintf("/avatars/%d/f%d.jpg?rev=%d", userID, size, rev)
}

// ProfileURL returns the course-scoped profile link for a user.
func ProfileURL(userID, courseID int64) string {
	return fmt.Sprintf("/users/%d/profile?course=%d", userID, courseID)
}
