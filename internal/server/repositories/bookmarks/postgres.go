package bookmarks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

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

func (r *PostgresRepository) Create(ctx context.Context, b *models.Bookmark) (*models.Bookmark, error) {
	query :=
		`INSERT INTO bookmarks (user_id, name, url)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, b.UserID, b.Name, b.URL).Scan(&b.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return b, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]models.Bookmark, error) {
	query :=
		`SELECT id, user_id, name, url FROM bookmarks
		 WHERE user_id = $1
		 ORDER BY name
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Bookmark
	for rows.Next() {
		var b models.Bookmark
		if err := rows.Scan(&b.ID, &b.UserID, &b.Name, &b.URL); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByName(ctx context.Context, userID, name string) (*models.Bookmark, error) {
	query :=
		`SELECT id, user_id, name, url FROM bookmarks
		 WHERE user_id = $1 AND name = $2
		 `

	b := &models.Bookmark{}
	err := r.db.QueryRowContext(ctx, query, userID, name).Scan(&b.ID, &b.UserID, &b.Name, &b.URL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return b, nil
}

func (r *PostgresRepository) DeleteByName(ctx context.Context, userID, name string) error {
	query := `DELETE FROM bookmarks WHERE user_id = $1 AND name = $2`

	res, err := r.db.ExecContext(ctx, query, userID, name)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}

	return nil
}
