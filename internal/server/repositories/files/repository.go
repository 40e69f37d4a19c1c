package files

import (
	"context"

	"github.com/omccomas/terminal/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, f *models.File) (*models.File, error)
	List(ctx context.Context, userID string) ([]models.File, error)
	GetByID(ctx context.Context, userID, id string) (*models.File, error)
	GetByName(ctx context.Context, userID, name string) (*models.File, error)
}
