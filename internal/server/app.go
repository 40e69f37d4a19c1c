// Package server wires up the terminal backend: database, migrations,
// services, external integrations, and the HTTP API, with graceful shutdown
// on SIGINT/SIGTERM.
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
	"time"

	"github.com/omccomas/terminal/internal/logging"
	"github.com/omccomas/terminal/internal/server/config"
	"github.com/omccomas/terminal/internal/server/httpapi"
	"github.com/omccomas/terminal/internal/server/integrations/openai"
	"github.com/omccomas/terminal/internal/server/integrations/stocks"
	"github.com/omccomas/terminal/internal/server/quotecache"
	"github.com/omccomas/terminal/internal/server/repositories/repomanager"
	"github.com/omccomas/terminal/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	manager := repomanager.NewPostgresRepositoryManager()
	if err := manager.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	deps := httpapi.Deps{
		Users:     services.NewUserService(db, manager, cfg),
		Notes:     services.NewNoteService(db, manager),
		Bookmarks: services.NewBookmarkService(db, manager),
		Macros:    services.NewMacroService(db, manager),
		Files:     services.NewFileService(db, manager, cfg),
		Messages:  services.NewMessageService(db, manager),
		Chat:      openai.NewClient(cfg.ChatBaseURL, cfg.ChatAPIKey, cfg.ChatModel),
		Quotes:    stocks.NewClient(cfg.StockBaseURL, cfg.StockAPIKey),
		Logger:    logger,
	}

	// The quote cache is optional; without redis every lookup hits the
	// provider directly.
	if cfg.RedisAddr != "" {
		client, err := quotecache.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, fmt.Errorf("redis init error: %w", err)
		}
		deps.QuoteCache = quotecache.New(client, cfg.QuoteCacheTTL)
	}

	srv := httpapi.New(cfg, logger, deps)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
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

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Start(); err != nil {
			app.logger.Error(ctx, "http server error", "error", err)
			cancelFunc()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.server.Stop(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "shutdown error", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(shutdownCtx, "db close error", "error", err)
	}

	wg.Wait()

	app.logger.Info(context.Background(), "app stopped")
}
