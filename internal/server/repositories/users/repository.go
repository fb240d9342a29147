// Package users declares and implements storage of Qwik2Do accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/qwik2do/internal/server/models"
)

type Repository interface {
	// Create inserts user and fills in its ID. A duplicate email yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
