// Package metadata persists small key/value facts of the local client, such
// as the signed-in user and its refresh token.
package metadata

import (
	"context"
)

// Keys of the persisted session.
const (
	KeyUserID       = "user_id"
	KeyEmail        = "email"
	KeyRefreshToken = "refresh_token"
)

type Repository interface {
	// Get reports ok=false for a missing key.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
