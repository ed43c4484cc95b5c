// internal/app/features/faces/handler.go
package faces

import (
	uierrors "github.com/dalemusser/coursefaces/internal/app/features/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the faces feature. The
// interactive page, the printable page, and their helpers all work off the
// same database handle and loggers.
type Handler struct {
	DB     *mongo.Database
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a faces Handler. It is typically called from the
// bootstrap BuildHandler function, where the application's DB and logger are
// already initialized.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		ErrLog: errLog,
		Log:    logger,
	}
}
