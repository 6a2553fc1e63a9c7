// Package server wires configuration, storage, services and the HTTP API
// together and runs them until the process is signalled.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gsbevilaqua83/private-rest-api/internal/logging"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/config"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/httpapi"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/repositories/repomanager"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler *httpapi.Handler
}

// openDB is a seam for tests.
var openDB = repomanager.Open

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger, err := logging.NewLogrus(os.Stdout, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	db, err := openDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	auth := services.NewAuthService(db, rm)
	reg := services.NewRegistrationService(db, rm, auth, c.BcryptCost, c.SerializableRetries)
	catalog := services.NewCatalogService(db, rm)

	return &App{
		config:  c,
		logger:  logger,
		db:      db,
		handler: httpapi.NewHandler(auth, reg, catalog, logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(
		app.config.EndpointAddrHTTP,
		httpapi.NewRouter(app.handler, app.logger),
		app.logger,
		httpapi.ServerOptions{
			ReadTimeout:     app.config.ReadTimeout,
			WriteTimeout:    app.config.WriteTimeout,
			ShutdownTimeout: app.config.ShutdownTimeout,
		},
	)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// closes the database.
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

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close", "error", err)
	}
	app.logger.Info(ctx, "Stopped")
}
