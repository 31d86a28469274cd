// Package app initializes and runs the main application server.
// It opens the database, runs migrations, seeds the default admin account,
// and starts the HTTP server with graceful shutdown.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/salarywatch/backend/internal/admins"
	"github.com/salarywatch/backend/internal/config"
	"github.com/salarywatch/backend/internal/httpapi"
	"github.com/salarywatch/backend/internal/logging"
	"github.com/salarywatch/backend/internal/submissions"
)

type App struct {
	config            *config.Config
	logger            logging.Logger
	db                *sql.DB
	submissionService *submissions.Service
	adminService      *admins.Service
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	db, err := InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := admins.SeedDefault(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("admin seed error: %w", err)
	}

	ss := submissions.NewService(submissions.NewSQLiteRepository(db))
	as := admins.NewService(admins.NewSQLiteRepository(db))

	return &App{config: c, logger: logger, db: db, submissionService: ss, adminService: as}, nil
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

	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger,
		app.submissionService, app.adminService, app.config.CORSOrigins)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "database", app.config.DatabaseDSN)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "Error closing database", "error", err)
	} else {
		app.logger.Info(ctx, "Database connection closed")
	}
}
