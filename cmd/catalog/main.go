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

	"finitefield.org/shoe-catalog/internal/catalog/config"
	"finitefield.org/shoe-catalog/internal/catalog/format"
	"finitefield.org/shoe-catalog/internal/catalog/httpserver"
	"finitefield.org/shoe-catalog/internal/catalog/observability"
	"finitefield.org/shoe-catalog/internal/catalog/shoes"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "catalog: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("environment", cfg.Server.Environment))

	service, err := buildShoesService(cfg.Catalog.SeedFile, logger)
	if err != nil {
		return err
	}

	formatter := format.New(cfg.Catalog.Currency, cfg.Catalog.Language)
	srv, err := httpserver.New(httpserver.Config{
		Address:          cfg.Server.Address,
		Logger:           logger,
		ShoesService:     service,
		Formatter:        formatter,
		NewReleaseWindow: cfg.Catalog.NewReleaseWindow,
		ReadTimeout:      cfg.Server.ReadTimeout,
		WriteTimeout:     cfg.Server.WriteTimeout,
		IdleTimeout:      cfg.Server.IdleTimeout,
	})
	if err != nil {
		return fmt.Errorf("build http server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.Info("catalog server listening", listeningFields(cfg.Server.Address, formatter, cfg.Catalog.NewReleaseWindow)...)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("catalog server stopped")
	return nil
}

func listeningFields(addr string, formatter *format.Formatter, window time.Duration) []zap.Field {
	return []zap.Field{
		zap.String("addr", addr),
		zap.String("currency", formatter.Currency()),
		zap.Duration("new_release_window", window),
	}
}

func buildShoesService(seedFile string, logger *zap.Logger) (shoes.Service, error) {
	if seedFile == "" {
		logger.Info("CATALOG_SEED_FILE not set; serving sample catalog")
		return shoes.NewStaticService(nil), nil
	}
	listings, err := shoes.LoadFile(seedFile)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded seed catalog", zap.String("path", seedFile), zap.Int("listings", len(listings)))
	return shoes.NewStaticService(listings), nil
}
