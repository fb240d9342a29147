package client

import (
	"context"

	"github.com/dmitrijs2005/qwik2do/internal/client/models"
)

// Session is what the server hands out on sign-in or session resume.
type Session struct {
	Identity     models.Identity
	RefreshToken string
}

// TokenObserver is notified when the transport rotates the refresh token on
// its own, or when the server rejects it and the session is gone.
type TokenObserver interface {
	TokensRotated(refreshToken string)
	SessionExpired()
}

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	SetObserver(o TokenObserver)

	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	Resume(ctx context.Context, refreshToken string) (*Session, error)
	Logout(ctx context.Context) error

	ListTasks(ctx context.Context) ([]*models.Task, error)
	CreateTask(ctx context.Context, text string) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error
	SetTaskCompleted(ctx context.Context, id string, completed bool) error

	BackgroundImage(ctx context.Context) (string, error)
	Weather(ctx context.Context, loc models.Location) (*models.Weather, error)
}
