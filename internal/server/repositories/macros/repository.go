package macros

import (
	"context"

	"github.com/omccomas/terminal/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, m *models.Macro) (*models.Macro, error)
	List(ctx context.Context, userID string) ([]models.Macro, error)
	GetByName(ctx context.Context, userID, name string) (*models.Macro, error)
	DeleteByName(ctx context.Context, userID, name string) error
}
