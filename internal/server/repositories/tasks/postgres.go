package tasks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/qwik2do/internal/common"
	"github.com/dmitrijs2005/qwik2do/internal/dbx"
	"github.com/dmitrijs2005/qwik2do/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, ownerID string) ([]*models.Task, error) {
	query := `
		SELECT id, user_id, text, completed, created_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := []*models.Task{}
	for rows.Next() {
		t := &models.Task{}
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Text, &t.Completed, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}

func (r *PostgresRepository) Create(ctx context.Context, ownerID string, text string) (*models.Task, error) {
	query := `
		INSERT INTO tasks (user_id, text)
		VALUES ($1, $2)
		RETURNING id, completed, created_at
	`
	t := &models.Task{OwnerID: ownerID, Text: text}
	if err := r.db.QueryRowContext(ctx, query, ownerID, text).Scan(&t.ID, &t.Completed, &t.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID string, id string) error {
	query := `
		DELETE FROM tasks
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	return affectedOne(res, err)
}

func (r *PostgresRepository) SetCompleted(ctx context.Context, ownerID string, id string, completed bool) error {
	query := `
		UPDATE tasks SET completed = $1
		WHERE id = $2 AND user_id = $3
	`
	res, err := r.db.ExecContext(ctx, query, completed, id, ownerID)
	return affectedOne(res, err)
}

func affectedOne(res sql.Result, err error) error {
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
