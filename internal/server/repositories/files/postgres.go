package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/omccomas/terminal/internal/common"
	"github.com/omccomas/terminal/internal/dbx"
	"github.com/omccomas/terminal/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, f *models.File) (*models.File, error) {
	query :=
		`INSERT INTO files (user_id, name, url)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, f.UserID, f.Name, f.URL).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return f, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]models.File, error) {
	query :=
		`SELECT id, user_id, name, url, created_at FROM files
		 WHERE user_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.File
	for rows.Next() {
		var f models.File
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.URL, &f.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*models.File, error) {
	query :=
		`SELECT id, user_id, name, url, created_at FROM files
		 WHERE user_id = $1 AND id = $2
		 `

	return r.one(ctx, query, userID, id)
}

func (r *PostgresRepository) GetByName(ctx context.Context, userID, name string) (*models.File, error) {
	query :=
		`SELECT id, user_id, name, url, created_at FROM files
		 WHERE user_id = $1 AND name = $2
		 ORDER BY created_at DESC
		 LIMIT 1
		 `

	return r.one(ctx, query, userID, name)
}

func (r *PostgresRepository) one(ctx context.Context, query string, args ...any) (*models.File, error) {
	f := &models.File{}
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&f.ID, &f.UserID, &f.Name, &f.URL, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}
