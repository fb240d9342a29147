// Package refreshtokens stores the opaque refresh tokens issued at sign-in.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/qwik2do/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, userID string, token string, expires time.Time) error

	// Find returns common.ErrorNotFound for an unknown token.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete is a no-op for an unknown token.
	Delete(ctx context.Context, token string) error

	// DeleteForUser deletes token only if it was issued to userID.
	DeleteForUser(ctx context.Context, userID string, token string) error

	// PurgeExpired drops every token of userID that expired before now.
	PurgeExpired(ctx context.Context, userID string, now time.Time) (int64, error)
}
