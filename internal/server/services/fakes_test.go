package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/qwik2do/internal/dbx"
	"github.com/dmitrijs2005/qwik2do/internal/server/models"
	refreshtokensrepo "github.com/dmitrijs2005/qwik2do/internal/server/repositories/refreshtokens"
	tasksrepo "github.com/dmitrijs2005/qwik2do/internal/server/repositories/tasks"
	usersrepo "github.com/dmitrijs2005/qwik2do/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	created   *models.User
	createErr error

	byEmail    *models.User
	byEmailErr error

	byID    *models.User
	byIDErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = "u1"
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmail, nil
}

func (f *fakeUsersRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byID, nil
}

type fakeRefreshRepo struct {
	findOut *models.RefreshToken
	findErr error

	deleted    []string
	deletedFor []string
	delErr     error

	createdFor []string
	expires    []time.Time
	createErr  error

	purgeErr error
	purged   []string
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID string, token string, expires time.Time) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createdFor = append(f.createdFor, userID)
	f.expires = append(f.expires, expires)
	return nil
}

func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, token)
	return nil
}

func (f *fakeRefreshRepo) DeleteForUser(ctx context.Context, userID string, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deletedFor = append(f.deletedFor, userID+"/"+token)
	return nil
}

func (f *fakeRefreshRepo) PurgeExpired(ctx context.Context, userID string, now time.Time) (int64, error) {
	if f.purgeErr != nil {
		return 0, f.purgeErr
	}
	f.purged = append(f.purged, userID)
	return 1, nil
}

type fakeTasksRepo struct {
	items   []*models.Task
	listErr error

	createErr error
	created   []string

	delErr    error
	setErr    error
	lastOwner string
	lastID    string
	lastFlag  bool
}

func (f *fakeTasksRepo) List(ctx context.Context, ownerID string) ([]*models.Task, error) {
	f.lastOwner = ownerID
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeTasksRepo) Create(ctx context.Context, ownerID string, text string) (*models.Task, error) {
	f.lastOwner = ownerID
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, text)
	return &models.Task{ID: "t1", OwnerID: ownerID, Text: text, CreatedAt: time.Now()}, nil
}

func (f *fakeTasksRepo) Delete(ctx context.Context, ownerID string, id string) error {
	f.lastOwner, f.lastID = ownerID, id
	return f.delErr
}

func (f *fakeTasksRepo) SetCompleted(ctx context.Context, ownerID string, id string, completed bool) error {
	f.lastOwner, f.lastID, f.lastFlag = ownerID, id, completed
	return f.setErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
	t *fakeTasksRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error           { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository { return m.r }
func (m *fakeRepoManager) Tasks(db dbx.DBTX) tasksrepo.Repository                 { return m.t }
