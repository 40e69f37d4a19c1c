package services

import (
	"context"
	"database/sql"

	"github.com/omccomas/terminal/internal/server/models"
	"github.com/omccomas/terminal/internal/server/repositories/repomanager"
)

type BookmarkService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewBookmarkService(db *sql.DB, m repomanager.RepositoryManager) *BookmarkService {
	return &BookmarkService{db: db, repomanager: m}
}

func (s *BookmarkService) Add(ctx context.Context, userID, name, url string) (*models.Bookmark, error) {
	b := &models.Bookmark{UserID: userID, Name: name, URL: url}
	return s.repomanager.Bookmarks(s.db).Create(ctx, b)
}

func (s *BookmarkService) List(ctx context.Context, userID string) ([]models.Bookmark, error) {
	return s.repomanager.Bookmarks(s.db).List(ctx, userID)
}

func (s *BookmarkService) Get(ctx context.Context, userID, name string) (*models.Bookmark, error) {
	return s.repomanager.Bookmarks(s.db).GetByName(ctx, userID, name)
}

func (s *BookmarkService) Remove(ctx context.Context, userID, name string) error {
	return s.repomanager.Bookmarks(s.db).DeleteByName(ctx, userID, name)
}
