package users

import (
	"context"

	"github.com/omccomas/terminal/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByLogin(ctx context.Context, login string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// SetUsername claims a handle for a user. The unique index on username
	// is the arbiter; a concurrent claim surfaces as common.ErrorConflict.
	SetUsername(ctx context.Context, userID, username string) error
}
