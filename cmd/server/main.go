// @title           Storage Manager API
// @version         1.0
// @description     Folders, files, notes and storage quotas.
// @host            localhost
// @schemes         http https
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storage-manager/internal/api"
	"storage-manager/internal/config"
	"storage-manager/internal/database"
	"storage-manager/internal/logging"
	"storage-manager/internal/ratelimit"
	"storage-manager/internal/service"
	"storage-manager/internal/storage"
	"storage-manager/internal/websocket"

	"github.com/jackc/pgx/v5/pgxpool"

	_ "storage-manager/docs"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	dbpool, err := pgxpool.New(ctx, cfg.DB.Source)
	if err != nil {
		return err
	}
	defer dbpool.Close()

	if err := dbpool.Ping(ctx); err != nil {
		return err
	}
	logger.Info("connected to database")

	if err := database.Migrate(ctx, dbpool); err != nil {
		return err
	}

	blobs, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	logger.Info("blob store ready", "backend", cfg.Storage.Backend, "path", cfg.Storage.Path)

	wsHub := websocket.NewHub(logger.With("component", "websocket"))
	go wsHub.Run(ctx)

	store := database.NewStore(dbpool)
	services, err := service.New(service.Deps{
		Store:     store,
		Blobs:     blobs,
		Publisher: wsHub,
		Log:       logger,
	})
	if err != nil {
		return err
	}

	limiter := ratelimit.NewLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window, cfg.RateLimit.Burst)
	defer limiter.Close()

	server := api.NewServer(cfg, store, services, wsHub, limiter, logger.With("component", "http"))

	httpServer := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
