package macros

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/omccomas/terminal/internal/common"
	"github.com/omccomas/terminal/internal/dbx"
	"github.com/omccomas/terminal/internal/server/models"
)

// PostgresRepository stores macro steps as a jsonb array so the ordered
// command lines round-trip without a join table.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, m *models.Macro) (*models.Macro, error) {
	steps, err := json.Marshal(m.Steps)
	if err != nil {
		return nil, fmt.Errorf("marshal steps: %w", err)
	}

	query :=
		`INSERT INTO macros (user_id, name, steps)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err = r.db.QueryRowContext(ctx, query, m.UserID, m.Name, steps).Scan(&m.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]models.Macro, error) {
	query :=
		`SELECT id, user_id, name, steps FROM macros
		 WHERE user_id = $1
		 ORDER BY name
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Macro
	for rows.Next() {
		m, err := scanMacro(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByName(ctx context.Context, userID, name string) (*models.Macro, error) {
	query :=
		`SELECT id, user_id, name, steps FROM macros
		 WHERE user_id = $1 AND name = $2
		 `

	row := r.db.QueryRowContext(ctx, query, userID, name)
	m, err := scanMacro(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}

func (r *PostgresRepository) DeleteByName(ctx context.Context, userID, name string) error {
	query := `DELETE FROM macros WHERE user_id = $1 AND name = $2`

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

func scanMacro(scan func(dest ...any) error) (*models.Macro, error) {
	m := &models.Macro{}
	var steps []byte
	if err := scan(&m.ID, &m.UserID, &m.Name, &steps); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(steps, &m.Steps); err != nil {
		return nil, fmt.Errorf("unmarshal steps: %w", err)
	}
	return m, nil
}
