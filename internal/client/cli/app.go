package cli

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/qwik2do/internal/client/client"
	"github.com/dmitrijs2005/qwik2do/internal/client/config"
	"github.com/dmitrijs2005/qwik2do/internal/client/dashboard"
	"github.com/dmitrijs2005/qwik2do/internal/client/models"
	"github.com/dmitrijs2005/qwik2do/internal/client/services"
	"github.com/dmitrijs2005/qwik2do/internal/client/tui"
	"github.com/dmitrijs2005/qwik2do/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// sessionManager is the part of services.SessionService the app drives.
type sessionManager interface {
	Identity() *models.Identity
	Restore(ctx context.Context) (bool, error)
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password string) error
	Subscribe(fn func(*models.Identity)) func()
	SignOut(ctx context.Context) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	config   *config.Config
	logger   logging.Logger
	session  sessionManager
	pinger   pinger
	tasks    dashboard.TaskRepository
	ambient  dashboard.AmbientGateway
	reader   *bufio.Reader
	closers  []func() error
	modeMu   sync.RWMutex
	mode     Mode
	showDash func(ctx context.Context) (signedOut bool, err error)
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	logFile, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	logger := logging.NewCharmLogger(logFile, c.LogLevel)

	db, err := client.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient, err := client.NewQwik2DoClient(c.ServerEndpointAddr, c.CallTimeout)
	if err != nil {
		db.Close()
		logFile.Close()
		return nil, err
	}

	httpClient := &http.Client{Timeout: 10 * time.Second}

	a := &App{
		config:  c,
		logger:  logger,
		session: services.NewSessionService(apiClient, db, logger),
		pinger:  apiClient,
		tasks:   services.NewTaskService(apiClient),
		ambient: services.NewAmbientService(apiClient, httpClient, c.GeolocationURL),
		reader:  bufio.NewReader(os.Stdin),
		closers: []func() error{apiClient.Close, db.Close, logFile.Close},
	}
	a.showDash = a.runDashboard
	return a, nil
}

func (a *App) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Warn(context.Background(), "close failed", "error", err)
		}
	}
}

func (a *App) Mode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Identity() != nil
}

// Run resumes a stored session if there is one and alternates between the
// sign-in prompt and the dashboard until the user leaves.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	if restored, err := a.session.Restore(ctx); err != nil {
		a.logger.Warn(ctx, "could not restore session", "error", err)
	} else if restored {
		a.logger.Info(ctx, "session restored")
	}

	a.loop(ctx, bufio.NewScanner(a.reader))
}

func (a *App) loop(ctx context.Context, scanner *bufio.Scanner) {
	for {
		if !a.isLoggedIn() && !runREPL(ctx, a, a.getStatus, scanner) {
			return
		}

		signedOut, err := a.showDash(ctx)
		if err != nil {
			a.logger.Error(ctx, "dashboard stopped", "error", err)
			printlnFn("The dashboard stopped unexpectedly.")
			return
		}
		if !signedOut {
			return
		}
		printlnFn("You have been signed out.")
	}
}

// runDashboard shows the dashboard until the user quits or the session ends.
func (a *App) runDashboard(ctx context.Context) (bool, error) {
	ctrl := dashboard.NewController(a.tasks, a.ambient, a.session, a.logger, dashboard.Options{
		FallbackBackground: a.config.FallbackBackgroundURL,
		ClockInterval:      a.config.ClockInterval,
		CallTimeout:        a.config.CallTimeout,
		TimeFormat:         a.config.TimeFormat,
		DateFormat:         a.config.DateFormat,
	})
	gate := dashboard.NewGate(a.session, ctrl, nil)
	gate.Open(ctx)
	defer gate.Close()

	if !a.isLoggedIn() {
		return true, nil
	}

	model := tui.New(ctrl, a.config.CallTimeout)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()

	model.Close()
	gate.Close()
	ctrl.Wait()

	return model.SignedOut(), err
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.pinger.Ping(ctx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
