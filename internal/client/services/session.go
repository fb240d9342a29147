// Package services holds the client-side collaborators of the dashboard:
// the session store, the task repository adapter and the ambient data
// gateway. All of them talk to qwik2do-server through client.Client.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/qwik2do/internal/client/client"
	"github.com/dmitrijs2005/qwik2do/internal/client/models"
	"github.com/dmitrijs2005/qwik2do/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/qwik2do/internal/dbx"
	"github.com/dmitrijs2005/qwik2do/internal/logging"
)

// ErrAuthFailed is the only error a failed sign-in reports, whatever the
// cause.
var ErrAuthFailed = errors.New("authentication failed")

// SessionService holds the current identity, keeps it persisted in the
// local database and notifies subscribers whenever it changes.
type SessionService struct {
	client client.Client
	db     *sql.DB
	logger logging.Logger

	mu       sync.Mutex
	identity *models.Identity
	subs     map[int]func(*models.Identity)
	nextSub  int
}

func NewSessionService(c client.Client, db *sql.DB, logger logging.Logger) *SessionService {
	s := &SessionService{
		client: c,
		db:     db,
		logger: logger,
		subs:   make(map[int]func(*models.Identity)),
	}
	c.SetObserver(s)
	return s
}

func (s *SessionService) metadataRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// Identity returns a copy of the current identity, or nil when signed out.
func (s *SessionService) Identity() *models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyIdentity(s.identity)
}

func copyIdentity(id *models.Identity) *models.Identity {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

// Subscribe calls fn with the current identity right away and then on every
// change. The returned func removes the subscription.
func (s *SessionService) Subscribe(fn func(*models.Identity)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	current := copyIdentity(s.identity)
	s.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *SessionService) setIdentity(identity *models.Identity) {
	s.mu.Lock()
	s.identity = copyIdentity(identity)
	subs := make([]func(*models.Identity), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(copyIdentity(identity))
	}
}

func (s *SessionService) persist(ctx context.Context, sess *client.Session) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.metadataRepo(tx)
		if err := repo.Set(ctx, metadata.KeyUserID, sess.Identity.ID); err != nil {
			return err
		}
		if err := repo.Set(ctx, metadata.KeyEmail, sess.Identity.Email); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyRefreshToken, sess.RefreshToken)
	})
}

func (s *SessionService) start(ctx context.Context, sess *client.Session) error {
	if err := s.persist(ctx, sess); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	s.setIdentity(&sess.Identity)
	return nil
}

// SignIn authenticates with email and password. Any failure of the server
// call is reported as ErrAuthFailed.
func (s *SessionService) SignIn(ctx context.Context, email, password string) error {
	sess, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.logger.Warn(ctx, "sign in failed", "email", email, "error", err)
		return ErrAuthFailed
	}
	return s.start(ctx, sess)
}

// SignUp creates an account and signs straight into it.
func (s *SessionService) SignUp(ctx context.Context, email, password string) error {
	if _, err := s.client.Register(ctx, email, password); err != nil {
		return fmt.Errorf("sign up error: %w", err)
	}
	return s.SignIn(ctx, email, password)
}

// Restore resumes the persisted session, if any. It reports whether a
// session is active afterwards. A refresh token the server rejects is
// forgotten; an unreachable server leaves it in place.
func (s *SessionService) Restore(ctx context.Context) (bool, error) {
	token, ok, err := s.metadataRepo(s.db).Get(ctx, metadata.KeyRefreshToken)
	if err != nil {
		return false, fmt.Errorf("session loading error: %w", err)
	}
	if !ok || token == "" {
		return false, nil
	}

	sess, err := s.client.Resume(ctx, token)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			s.logger.Info(ctx, "persisted session rejected")
			return false, s.clearLocal(ctx)
		}
		return false, fmt.Errorf("session resume error: %w", err)
	}

	if err := s.start(ctx, sess); err != nil {
		return false, err
	}
	return true, nil
}

// SignOut revokes the session on the server, forgets it locally and
// notifies subscribers. A failed revoke is logged only.
func (s *SessionService) SignOut(ctx context.Context) error {
	if err := s.client.Logout(ctx); err != nil {
		s.logger.Error(ctx, "logout failed", "error", err)
	}

	err := s.clearLocal(ctx)
	s.setIdentity(nil)
	return err
}

func (s *SessionService) clearLocal(ctx context.Context) error {
	if err := s.metadataRepo(s.db).Clear(ctx); err != nil {
		return fmt.Errorf("session clearing error: %w", err)
	}
	return nil
}

// TokensRotated persists a refresh token the transport rotated mid-call.
func (s *SessionService) TokensRotated(refreshToken string) {
	ctx := context.Background()
	if err := s.metadataRepo(s.db).Set(ctx, metadata.KeyRefreshToken, refreshToken); err != nil {
		s.logger.Error(ctx, "refresh token saving failed", "error", err)
	}
}

// SessionExpired drops the session once the server rejected its refresh
// token.
func (s *SessionService) SessionExpired() {
	ctx := context.Background()
	s.logger.Info(ctx, "session expired")
	if err := s.clearLocal(ctx); err != nil {
		s.logger.Error(ctx, "session clearing failed", "error", err)
	}
	s.setIdentity(nil)
}
