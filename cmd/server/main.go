package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fantravel1/cheapretreats-sub001/internal/config"
	"github.com/fantravel1/cheapretreats-sub001/internal/database"
	"github.com/fantravel1/cheapretreats-sub001/internal/jobs"
	"github.com/fantravel1/cheapretreats-sub001/internal/middleware"
	"github.com/fantravel1/cheapretreats-sub001/internal/repository"
	"github.com/fantravel1/cheapretreats-sub001/internal/service"
)

func main() {
	// Initialize structured logging; the level is raised or lowered once
	// configuration is known.
	var level slog.LevelVar
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: &level,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	level.Set(cfg.Log.SlogLevel())

	if err := run(cfg, logger); err != nil {
		slog.Error("server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("server exited")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Open the definitions source
	source, closeSource, err := repository.Open(ctx, repository.OpenOptions{
		Kind: cfg.Catalog.Source,
		Path: cfg.Catalog.Path,
		Database: database.Config{
			Host:      cfg.Database.Host,
			Port:      cfg.Database.Port,
			User:      cfg.Database.User,
			Password:  cfg.Database.Password,
			Namespace: cfg.Database.Namespace,
			Database:  cfg.Database.Database,
		},
	})
	if err != nil {
		return fmt.Errorf("open catalog source: %w", err)
	}
	defer func() { _ = closeSource() }()

	// The first load must succeed; there is nothing to serve otherwise.
	catalogService := service.NewCatalogService(service.CatalogServiceConfig{
		Source: source,
		Logger: logger,
	})
	if err := catalogService.Reload(ctx); err != nil {
		return fmt.Errorf("initial catalog load: %w", err)
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.RequestsPerMinute > 0 {
		limiter = middleware.NewRateLimiter(middleware.RateLimitConfig{
			Rate:   cfg.RateLimit.RequestsPerMinute,
			Window: time.Minute,
			Burst:  cfg.RateLimit.Burst,
		})
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      newRouter(cfg, catalogService, limiter, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	var watcher *jobs.SourceWatcher
	if cfg.Catalog.Watch {
		watcher, err = jobs.NewSourceWatcher(jobs.SourceWatcherConfig{
			Path:     cfg.Catalog.Path,
			Reloader: catalogService,
			Logger:   logger,
		})
		if err != nil {
			return err
		}
		if err := watcher.Start(); err != nil {
			watcher.Stop()
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
			slog.String("source", source.Name()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if limiter != nil {
		g.Go(func() error { return limiter.Run(gctx) })
	}

	// Background reloads
	if cfg.Catalog.RefreshInterval > 0 {
		refresher := jobs.NewCatalogRefresher(catalogService, cfg.Catalog.RefreshInterval, logger)
		refresher.Start()
		g.Go(func() error {
			<-gctx.Done()
			refresher.Stop()
			return nil
		})
	}

	if watcher != nil {
		g.Go(func() error {
			<-gctx.Done()
			watcher.Stop()
			return nil
		})
	}

	return g.Wait()
}
