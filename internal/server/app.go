// Package server initializes and runs the bookmark service: it opens the
// database, runs migrations, wires services, and starts the HTTP server with
// graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrijs2005/bookmarkd/internal/logging"
	"github.com/dmitrijs2005/bookmarkd/internal/server/config"
	"github.com/dmitrijs2005/bookmarkd/internal/server/httpapi"
	"github.com/dmitrijs2005/bookmarkd/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/bookmarkd/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var db *sql.DB
	var rm repomanager.RepositoryManager

	if cfg.DatabaseDSN == "" {
		// local experiments only; everything is lost on shutdown
		rm = repomanager.NewInMemoryRepositoryManager()
	} else {
		var err error
		db, err = sql.Open("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db open error: %w", err)
		}

		rm = repomanager.NewPostgresRepositoryManager()
		if err := rm.RunMigrations(context.Background(), db); err != nil {
			return nil, fmt.Errorf("migration error: %w", err)
		}
	}

	as := services.NewAuthService(db, rm, cfg)
	us := services.NewUserService(db, rm)
	bs := services.NewBookmarkService(db, rm)

	srv := httpapi.NewServer(cfg, logger, as, us, bs)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
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

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err.Error())
		}
	}
}
