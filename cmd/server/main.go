// Command server runs the olivier API.
//
//	@title			Olivier API
//	@version		0.1
//	@description	Users and items (story, ask, comment) of a link aggregator.
//	@BasePath		/
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"olivier/internal/config"
	"olivier/internal/db"
	"olivier/internal/logger"
	"olivier/internal/router"
	"olivier/internal/store"
)

func main() {
	cfg := config.Load()

	closer, err := logger.Init(cfg.Log)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	err = run(cfg)
	if err != nil {
		slog.Error("server exited", "err", err)
	}
	// flush the log file before exiting
	closer.Close()
	if err != nil {
		os.Exit(1)
	}
}

// run serves until SIGINT/SIGTERM or a listener failure. Every resource it
// opens is released before it returns.
func run(cfg config.Config) error {
	// Initialize Database
	gdb, err := db.Open(cfg.Database.URI)
	if err != nil {
		return err
	}
	defer db.Close(gdb)

	if err := db.Migrate(gdb); err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	r := router.New(router.Deps{
		Store:          store.New(gdb),
		Logger:         slog.Default(),
		Prefix:         cfg.Service.Prefix,
		RenderMarkdown: cfg.RenderMarkdown,
	})

	srv := &http.Server{
		Addr:     cfg.Service.Addr(),
		Handler:  r,
		ErrorLog: logger.Std(slog.Default(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr, "prefix", cfg.Service.Prefix)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down", "timeout", cfg.Service.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Service.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
