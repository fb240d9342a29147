package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/dmitrijs2005/qwik2do/internal/client/models"
)

var errBoom = errors.New("boom")

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func stubInputs(t *testing.T, email string, password []byte) {
	t.Helper()
	origLine, origPassword := askLine, askPassword
	askLine = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return email, nil }
	askPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	t.Cleanup(func() {
		askLine = origLine
		askPassword = origPassword
	})
}

type fakeSession struct {
	mu       sync.Mutex
	identity *models.Identity

	restored   bool
	restoreErr error
	signInErr  error
	signUpErr  error

	signIns  []string
	signUps  []string
	password string
	signOuts int
}

func (f *fakeSession) Identity() *models.Identity {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.identity
}

func (f *fakeSession) setIdentity(id *models.Identity) {
	f.mu.Lock()
	f.identity = id
	f.mu.Unlock()
}

func (f *fakeSession) Restore(context.Context) (bool, error) {
	if f.restored {
		f.setIdentity(&models.Identity{ID: "u1", Email: "ann@example.com"})
	}
	return f.restored, f.restoreErr
}

func (f *fakeSession) SignIn(_ context.Context, email, password string) error {
	f.signIns = append(f.signIns, email)
	f.password = password
	if f.signInErr != nil {
		return f.signInErr
	}
	f.setIdentity(&models.Identity{ID: "u1", Email: email})
	return nil
}

func (f *fakeSession) SignUp(_ context.Context, email, password string) error {
	f.signUps = append(f.signUps, email)
	if f.signUpErr != nil {
		return f.signUpErr
	}
	return f.SignIn(context.Background(), email, password)
}

func (f *fakeSession) Subscribe(fn func(*models.Identity)) func() {
	fn(f.Identity())
	return func() {}
}

func (f *fakeSession) SignOut(context.Context) error {
	f.signOuts++
	f.setIdentity(nil)
	return nil
}

type fakePinger struct {
	mu  sync.Mutex
	err error
	n   int
}

func (f *fakePinger) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.n++
	return f.err
}

func (f *fakePinger) setErr(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}
