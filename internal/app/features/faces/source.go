// internal/app/features/faces/source.go
package faces

import (
	"context"

	groupingstore "github.com/dalemusser/coursefaces/internal/app/store/groupings"
	groupstore "github.com/dalemusser/coursefaces/internal/app/store/groups"
	"github.com/dalemusser/coursefaces/internal/app/store/queries/enrolledusers"
	"github.com/dalemusser/coursefaces/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// dbSource adapts the Mongo stores to the groupselect.GroupSource and
// roster.UserSource interfaces.
type dbSource struct {
	db        *mongo.Database
	groups    *groupstore.Store
	groupings *groupingstore.Store
}

func newSource(db *mongo.Database) *dbSource {
	return &dbSource{
		db:        db,
		groups:    groupstore.New(db),
		groupings: groupingstore.New(db),
	}
}

func (s *dbSource) GroupByID(ctx context.Context, id int64) (models.Group, bool, error) {
	return s.groups.GroupByID(ctx, id)
}

func (s *dbSource) CourseGroupings(ctx context.Context, courseID int64) ([]models.Grouping, error) {
	return s.groupings.CourseGroupings(ctx, courseID)
}

func (s *dbSource) GroupingGroups(ctx context.Context, courseID, groupingID int64) ([]models.Group, error) {
	return s.groups.GroupingGroups(ctx, courseID, groupingID)
}

func (s *dbSource) CourseGroups(ctx context.Context, courseID int64) ([]models.Group, error) {
	return s.groups.CourseGroups(ctx, courseID)
}

func (s *dbSource) EnrolledUsers(ctx context.Context, courseID, groupID int64) ([]models.User, error) {
	return enrolledusers.List(ctx, s.db, courseID, groupID)
}
