package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/dmitrijs2005/qwik2do/internal/client/client"
	"github.com/dmitrijs2005/qwik2do/internal/client/models"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

var errBoom = errors.New("boom")

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, client.RunMigrations(context.Background(), db))
	return db
}

func getMeta(t *testing.T, db *sql.DB, k string) (string, bool) {
	t.Helper()
	var v string
	err := db.QueryRow(`SELECT value FROM metadata WHERE key = ?`, k).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	require.NoError(t, err)
	return v, true
}

// fakeClient implements client.Client for service tests.
type fakeClient struct {
	observer client.TokenObserver

	registerErr error
	loginSess   *client.Session
	loginErr    error
	resumeSess  *client.Session
	resumeErr   error
	logoutErr   error

	tasks     []*models.Task
	listErr   error
	created   *models.Task
	createErr error
	deleteErr error
	doneErr   error

	bgURL      string
	bgErr      error
	weather    *models.Weather
	weatherErr error

	lastRegisterEmail string
	lastLoginEmail    string
	lastResumeToken   string
	logoutCalls       int
	lastCreateText    string
	lastDeleteID      string
	lastDoneID        string
	lastDone          bool
	lastWeatherLoc    models.Location
}

func (f *fakeClient) Close() error                       { return nil }
func (f *fakeClient) Ping(context.Context) error         { return nil }
func (f *fakeClient) SetObserver(o client.TokenObserver) { f.observer = o }

func (f *fakeClient) Register(_ context.Context, email, _ string) (string, error) {
	f.lastRegisterEmail = email
	return "u1", f.registerErr
}

func (f *fakeClient) Login(_ context.Context, email, _ string) (*client.Session, error) {
	f.lastLoginEmail = email
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginSess, nil
}

func (f *fakeClient) Resume(_ context.Context, token string) (*client.Session, error) {
	f.lastResumeToken = token
	if f.resumeErr != nil {
		return nil, f.resumeErr
	}
	return f.resumeSess, nil
}

func (f *fakeClient) Logout(context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeClient) ListTasks(context.Context) ([]*models.Task, error) {
	return f.tasks, f.listErr
}

func (f *fakeClient) CreateTask(_ context.Context, text string) (*models.Task, error) {
	f.lastCreateText = text
	return f.created, f.createErr
}

func (f *fakeClient) DeleteTask(_ context.Context, id string) error {
	f.lastDeleteID = id
	return f.deleteErr
}

func (f *fakeClient) SetTaskCompleted(_ context.Context, id string, completed bool) error {
	f.lastDoneID, f.lastDone = id, completed
	return f.doneErr
}

func (f *fakeClient) BackgroundImage(context.Context) (string, error) {
	return f.bgURL, f.bgErr
}

func (f *fakeClient) Weather(_ context.Context, loc models.Location) (*models.Weather, error) {
	f.lastWeatherLoc = loc
	return f.weather, f.weatherErr
}
