package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/qwik2do/internal/client/config"
	"github.com/dmitrijs2005/qwik2do/internal/client/models"
	"github.com/dmitrijs2005/qwik2do/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetMode_LogsOnlyOnChange(t *testing.T) {
	var buf bytes.Buffer
	a := &App{logger: logging.NewCharmLogger(&buf, "info")}

	a.setMode(ModeOnline)
	assert.Equal(t, ModeOnline, a.Mode())
	assert.Contains(t, buf.String(), "connectivity changed")

	buf.Reset()
	a.setMode(ModeOnline)
	assert.Empty(t, buf.String())

	a.setMode(ModeOffline)
	assert.Equal(t, ModeOffline, a.Mode())
	assert.NotEmpty(t, buf.String())
}

func TestOnlineStatusWatcher(t *testing.T) {
	p := &fakePinger{}
	a := &App{logger: logging.Nop{}, pinger: p}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.StartOnlineStatusWatcher(ctx, time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return a.Mode() == ModeOnline }, time.Second, time.Millisecond)
	p.setErr(errBoom)
	require.Eventually(t, func() bool { return a.Mode() == ModeOffline }, time.Second, time.Millisecond)

	cancel()
	<-done
}

func TestOnlineStatusWatcher_DisabledWithZeroInterval(t *testing.T) {
	p := &fakePinger{}
	a := &App{logger: logging.Nop{}, pinger: p}

	a.StartOnlineStatusWatcher(context.Background(), 0)
	assert.Zero(t, p.n)
}

func newLoopApp(s *fakeSession, dash func(context.Context) (bool, error)) *App {
	return &App{
		config:   &config.Config{},
		logger:   logging.Nop{},
		session:  s,
		pinger:   &fakePinger{},
		reader:   bufio.NewReader(strings.NewReader("")),
		showDash: dash,
	}
}

func TestLoop_RestoredSessionGoesStraightToDashboard(t *testing.T) {
	silencePrintln(t)

	s := &fakeSession{identity: &models.Identity{ID: "u1", Email: "ann@example.com"}}
	shown := 0
	a := newLoopApp(s, func(context.Context) (bool, error) {
		shown++
		return false, nil
	})

	a.loop(context.Background(), scannerOf())
	assert.Equal(t, 1, shown)
}

func TestLoop_SignOutReturnsToPrompt(t *testing.T) {
	lines := silencePrintln(t)
	stubInputs(t, "ann@example.com", []byte("pw"))

	s := &fakeSession{identity: &models.Identity{ID: "u1", Email: "ann@example.com"}}
	shown := 0
	a := newLoopApp(s, func(ctx context.Context) (bool, error) {
		shown++
		if shown == 1 {
			_ = s.SignOut(ctx)
			return true, nil
		}
		return false, nil
	})

	a.loop(context.Background(), scannerOf("login"))

	assert.Equal(t, 2, shown)
	assert.Equal(t, []string{"ann@example.com"}, s.signIns)
	assert.Contains(t, *lines, "You have been signed out.")
}

func TestLoop_ExitWithoutSigningIn(t *testing.T) {
	silencePrintln(t)

	s := &fakeSession{}
	a := newLoopApp(s, func(context.Context) (bool, error) {
		t.Fatal("dashboard must not be shown without a session")
		return false, nil
	})

	a.loop(context.Background(), scannerOf("exit"))
}

func TestLoop_DashboardErrorStops(t *testing.T) {
	lines := silencePrintln(t)

	s := &fakeSession{identity: &models.Identity{ID: "u1"}}
	a := newLoopApp(s, func(context.Context) (bool, error) { return true, errBoom })

	a.loop(context.Background(), scannerOf())
	assert.Contains(t, *lines, "The dashboard stopped unexpectedly.")
}

func TestRun_RestoresSession(t *testing.T) {
	silencePrintln(t)

	s := &fakeSession{restored: true}
	var who string
	a := newLoopApp(s, func(context.Context) (bool, error) {
		who = s.Identity().Email
		return false, nil
	})

	a.Run(context.Background())
	assert.Equal(t, "ann@example.com", who)
}
