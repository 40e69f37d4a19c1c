package messages

import (
	"context"

	"github.com/omccomas/terminal/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, m *models.Message) (*models.Message, error)
	// ListInbox returns messages addressed to userID, oldest first, with
	// sender usernames resolved.
	ListInbox(ctx context.Context, userID string) ([]models.Message, error)
	GetByID(ctx context.Context, id string) (*models.Message, error)
	Delete(ctx context.Context, id string) error
}
