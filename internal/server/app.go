// Package server initializes and runs the application: it wires the
// configuration, repositories, and services together, starts the HTTP
// server, and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/grafibook/automotora/internal/logging"
	"github.com/grafibook/automotora/internal/server/config"
	"github.com/grafibook/automotora/internal/server/httpapi"
	"github.com/grafibook/automotora/internal/server/password"
	"github.com/grafibook/automotora/internal/server/repositories/repomanager"
	"github.com/grafibook/automotora/internal/server/services"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	repos          repomanager.RepositoryManager
	userService    *services.UserService
	catalogService *services.CatalogService
	imageService   *services.ImageService
}

func NewApp(cfg *config.Config) (*App, error) {

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	rm, err := repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	hasher := password.NewHasher(password.DefaultParams())

	us := services.NewUserService(rm.Users(), hasher, cfg)
	cs := services.NewCatalogService(rm)
	is := services.NewImageService(cfg)

	return &App{
		config:         cfg,
		logger:         logger,
		repos:          rm,
		userService:    us,
		catalogService: cs,
		imageService:   is,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.userService, app.catalogService, app.imageService)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "closing db", "error", err.Error())
	}
}
