package notes

import (
	"context"

	"github.com/omccomas/terminal/internal/server/models"
)

type Repository interface {
	// Create inserts a note; a duplicate title for the same user returns
	// common.ErrorConflict.
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	ListTitles(ctx context.Context, userID string) ([]string, error)
	GetByTitle(ctx context.Context, userID, title string) (*models.Note, error)
}
