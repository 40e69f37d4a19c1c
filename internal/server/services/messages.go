package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/omccomas/terminal/internal/common"
	"github.com/omccomas/terminal/internal/server/models"
	"github.com/omccomas/terminal/internal/server/repositories/repomanager"
)

type MessageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewMessageService(db *sql.DB, m repomanager.RepositoryManager) *MessageService {
	return &MessageService{db: db, repomanager: m}
}

// Send resolves the recipient's public username to an account and stores the
// message. Unknown recipients surface as common.ErrorNotFound.
func (s *MessageService) Send(ctx context.Context, senderID, recipientUsername, content string) (*models.Message, error) {
	recipient, err := s.repomanager.Users(s.db).GetByUsername(ctx, recipientUsername)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}

	m := &models.Message{SenderID: senderID, RecipientID: recipient.ID, Content: content}
	return s.repomanager.Messages(s.db).Create(ctx, m)
}

func (s *MessageService) Inbox(ctx context.Context, userID string) ([]models.Message, error) {
	return s.repomanager.Messages(s.db).ListInbox(ctx, userID)
}

// Delete removes a message, but only when the caller is its recipient.
func (s *MessageService) Delete(ctx context.Context, userID, messageID string) error {
	repo := s.repomanager.Messages(s.db)

	m, err := repo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}

	if m.RecipientID != userID {
		return common.ErrorUnauthorized
	}

	return repo.Delete(ctx, messageID)
}
