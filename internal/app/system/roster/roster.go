// Package roster turns enrolled users into display-ready cards for the faces
// pages: fetch, locale-aware sort, and projection to name + photo + profile
// link. It performs reads only; nothing here writes.
package roster

import (
	"context"

	"github.com/dalemusser/coursefaces/internal/app/system/htmlsanitize"
	"github.com/dalemusser/coursefaces/internal/app/system/natsort"
	"github.com/dalemusser/coursefaces/internal/domain/models"
)

// Sort keys accepted by Assemble. Anything else normalizes to OrderFirstName.
const (
	OrderFirstName = "firstname"
	OrderLastName  = "lastname"
)

// NormalizeOrder maps an arbitrary request value onto a valid sort key.
// Invalid values default silently; a bad orderby parameter never fails a
// request.
func NormalizeOrder(s string) string {
	switch s {
	case OrderFirstName, OrderLastName:
		return s
	default:
		return OrderFirstName
	}
}

// UserSource fetches the enrolled, active users for a course. groupID 0
// means no group filter. The enrolledusers aggregation implements it; tests
// use in-memory fakes.
type UserSource interface {
	EnrolledUsers(ctx context.Context, courseID, groupID int64) ([]models.User, error)
}

// Card is the display projection of one enrolled user. Cards are built fresh
// per request and never cached.
type Card struct {
	FullName   string
	PictureURL string
	ProfileURL string
}

// Assembler builds ordered card lists for one course.
type Assembler struct {
	Users UserSource
}

// Assemble fetches the enrolled users for the course (optionally filtered to
// one group), sorts them by natural collation order on the requested name
// field, and projects them into cards.
func (a *Assembler) Assemble(ctx context.Context, courseID, groupID int64, orderBy string) ([]Card, error) {
	orderBy = NormalizeOrder(orderBy)

	users, err := a.Users.EnrolledUsers(ctx, courseID, groupID)
	if err != nil {
		return nil, err
	}

	natsort.SortBy(users, func(u models.User) string {
		if orderBy == OrderLastName {
			return u.LastName
		}
		return u.FirstName
	})

	cards := make([]Card, 0, len(users))
	for _, u := range users {
		cards = append(cards, Card{
			FullName:   FullName(u),
			PictureURL: PhotoURL(u.ID, u.PictureRev, PhotoSize),
			ProfileURL: ProfileURL(u.ID, courseID),
		})
	}
	return cards, nil
}

// FullName returns the sanitized display name for a user.
func FullName(u models.User) string {
	return htmlsanitize.Text(u.FirstName + " " + u.LastName)
}
