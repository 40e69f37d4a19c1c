package services

import (
	"context"
	"database/sql"

	"github.com/omccomas/terminal/internal/server/models"
	"github.com/omccomas/terminal/internal/server/repositories/repomanager"
)

type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewNoteService(db *sql.DB, m repomanager.RepositoryManager) *NoteService {
	return &NoteService{db: db, repomanager: m}
}

func (s *NoteService) Create(ctx context.Context, userID, title, content string) (*models.Note, error) {
	note := &models.Note{UserID: userID, Title: title, Content: content}
	return s.repomanager.Notes(s.db).Create(ctx, note)
}

func (s *NoteService) ListTitles(ctx context.Context, userID string) ([]string, error) {
	return s.repomanager.Notes(s.db).ListTitles(ctx, userID)
}

func (s *NoteService) Get(ctx context.Context, userID, title string) (*models.Note, error) {
	return s.repomanager.Notes(s.db).GetByTitle(ctx, userID, title)
}
