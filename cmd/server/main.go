package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"pixelnex.dev/internal/config"
	"pixelnex.dev/internal/contact"
	"pixelnex.dev/internal/handlers"
	"pixelnex.dev/internal/media"
	"pixelnex.dev/internal/services"
	"pixelnex.dev/internal/storage/likes"
	"pixelnex.dev/internal/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	likeStore, err := likes.Open(ctx, cfg.Likes.Store(), logger)
	if err != nil {
		return fmt.Errorf("open likes store: %w", err)
	}
	defer likeStore.Close()

	projects := services.NewProjectService(cfg.Projects)
	stats := services.NewStatsService(cfg.Projects, cfg.StatsLatency, logger)
	interactions := services.NewInteractionService(projects, stats, likeStore, logger,
		services.WithSessionTTL(cfg.Sessions.TTL),
		services.WithMaxSessions(cfg.Sessions.MaxSessions),
	)
	defer interactions.Shutdown()
	go interactions.Janitor(ctx, cfg.Sessions.TTL/2)

	router := handlers.SetupRoutes(cfg, handlers.Services{
		Projects:     projects,
		Stats:        stats,
		Gallery:      services.NewGalleryService(projects, media.Default()),
		Interactions: interactions,
		Contact:      contact.NewSubmitter(cfg.Contact.Endpoint, cfg.Contact.Timeout, logger),
		Profile:      cfg.Profile,
	}, logger)

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Portfolio server listening",
			zap.String("addr", cfg.ServerAddr),
			zap.Int("projects", len(cfg.Projects.Projects)),
			zap.String("likes_backend", cfg.Likes.Backend),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
