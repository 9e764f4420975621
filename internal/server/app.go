// Package server initializes and runs the registry server: it opens the
// database pool and upload directory once at startup, wires the services
// together and serves the HTTP API until the process is signalled.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/campusreg/lostfound/internal/logging"
	"github.com/campusreg/lostfound/internal/server/config"
	"github.com/campusreg/lostfound/internal/server/db"
	"github.com/campusreg/lostfound/internal/server/httpapi"
	"github.com/campusreg/lostfound/internal/server/items"
	"github.com/campusreg/lostfound/internal/server/uploads"
	"github.com/campusreg/lostfound/internal/server/users"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager db.RepositoryManager
	api     *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	manager, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	store, err := uploads.NewDiskStore(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("upload dir init error: %w", err)
	}

	userService := users.NewService(manager.Users(), cfg)
	lostService := items.NewService(items.Lost, manager.LostItems())
	foundService := items.NewService(items.Found, manager.FoundItems())

	api := httpapi.NewServer(cfg, logger, userService, lostService, foundService, store)

	return &App{config: cfg, logger: logger, manager: manager, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app")

	app.initSignalHandler(cancelFunc)

	if err := app.api.Run(ctx); err != nil {
		app.logger.Error(ctx, "http server error", "error", err.Error())
	}

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
