// Package tasks stores to-do items. Every operation is scoped to the owning
// user, so one user can never observe or touch another user's rows.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/qwik2do/internal/server/models"
)

type Repository interface {
	// List returns the owner's tasks, oldest first.
	List(ctx context.Context, ownerID string) ([]*models.Task, error)
	Create(ctx context.Context, ownerID string, text string) (*models.Task, error)
	// Delete and SetCompleted return common.ErrorNotFound when no row with
	// that id belongs to ownerID.
	Delete(ctx context.Context, ownerID string, id string) error
	SetCompleted(ctx context.Context, ownerID string, id string, completed bool) error
}
