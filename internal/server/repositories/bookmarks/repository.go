package bookmarks

import (
	"context"

	"github.com/omccomas/terminal/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, b *models.Bookmark) (*models.Bookmark, error)
	List(ctx context.Context, userID string) ([]models.Bookmark, error)
	GetByName(ctx context.Context, userID, name string) (*models.Bookmark, error)
	// DeleteByName removes one bookmark; absent names return common.ErrorNotFound.
	DeleteByName(ctx context.Context, userID, name string) error
}
