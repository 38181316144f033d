package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"banalysis/internal/cli"
	apphttp "banalysis/internal/http"
	applog "banalysis/internal/log"
	"banalysis/internal/services"
	"banalysis/internal/statement"
)

func main() {
	if err := run(); err != nil {
		os.Stderr.WriteString("banalysis: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// run owns the full lifecycle so deferred teardown (logger, caches)
// always executes, even on failure paths.
func run() error {
	cli.LoadEnvFile()

	cfg, err := cli.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := cli.SetupLogger(cfg, applog.ComponentApp)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Close()
	}()

	statements := services.NewStatementService(statement.NewStore(), cfg.ParseCacheSize, cfg.ParseCacheTTL)
	defer statements.Close()

	srv := apphttp.NewServer(apphttp.Options{
		Addr:           ":" + cfg.Port,
		MaxUploadBytes: cfg.MaxUploadBytes,
		RateLimitRPM:   cfg.RateLimitRPM,
	}, statements)

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting banalysis server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		return err
	}

	logger.Info("Server stopped gracefully")
	return nil
}
