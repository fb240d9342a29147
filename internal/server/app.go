// Package server wires qwik2do-server together: configuration, PostgreSQL
// and migrations, the services, the ambient providers and the gRPC endpoint.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/qwik2do/internal/logging"
	"github.com/dmitrijs2005/qwik2do/internal/server/ambient"
	"github.com/dmitrijs2005/qwik2do/internal/server/config"
	"github.com/dmitrijs2005/qwik2do/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/qwik2do/internal/server/services"

	gs "github.com/dmitrijs2005/qwik2do/internal/server/grpc"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	userService    *services.UserService
	taskService    *services.TaskService
	ambientService *services.AmbientService
}

// seams for tests
var (
	openDB          = sql.Open
	newRepoManager  = repomanager.NewPostgresRepositoryManager
	signalsToNotify = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT}
)

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	db, err := openDB("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := newRepoManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	return &App{
		config:         c,
		logger:         logger,
		db:             db,
		userService:    services.NewUserService(db, rm, c),
		taskService:    services.NewTaskService(db, rm),
		ambientService: newAmbientService(c),
	}, nil
}

func newAmbientService(c *config.Config) *services.AmbientService {
	httpClient := &http.Client{Timeout: c.UpstreamTimeout}

	var gallery services.ImageProvider
	if c.S3Bucket != "" {
		gallery = ambient.NewGallery(ambient.GalleryConfig{
			AccessKey:    c.S3RootUser,
			SecretKey:    c.S3RootPassword,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
			Bucket:       c.S3Bucket,
			Prefix:       c.S3GalleryPrefix,
		})
	}

	return services.NewAmbientService(
		ambient.NewPixabayClient(c.PixabayAPIKey, c.PixabayBaseURL, httpClient),
		gallery,
		ambient.NewAccuWeatherClient(c.AccuWeatherAPIKey, c.AccuWeatherBaseURL, httpClient),
		c.UpstreamTimeout,
		c.WeatherCacheTTL,
	)
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, signalsToNotify...)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Signal received", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.taskService, app.ambientService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close", "error", err.Error())
	}
	app.logger.Info(ctx, "Stopped")
}
