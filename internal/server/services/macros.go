package services

import (
	"context"
	"database/sql"

	"github.com/omccomas/terminal/internal/server/models"
	"github.com/omccomas/terminal/internal/server/repositories/repomanager"
)

type MacroService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewMacroService(db *sql.DB, m repomanager.RepositoryManager) *MacroService {
	return &MacroService{db: db, repomanager: m}
}

func (s *MacroService) Create(ctx context.Context, userID, name string, steps []string) (*models.Macro, error) {
	m := &models.Macro{UserID: userID, Name: name, Steps: steps}
	return s.repomanager.Macros(s.db).Create(ctx, m)
}

func (s *MacroService) List(ctx context.Context, userID string) ([]models.Macro, error) {
	return s.repomanager.Macros(s.db).List(ctx, userID)
}

func (s *MacroService) Get(ctx context.Context, userID, name string) (*models.Macro, error) {
	return s.repomanager.Macros(s.db).GetByName(ctx, userID, name)
}

func (s *MacroService) Remove(ctx context.Context, userID, name string) error {
	return s.repomanager.Macros(s.db).DeleteByName(ctx, userID, name)
}
