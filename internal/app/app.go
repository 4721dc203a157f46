package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/nutritrack-backend/internal/config"
	"github.com/heartmarshall/nutritrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/nutritrack-backend/internal/transport/rest"
)

// Run is the API server entry point. It loads configuration, wires the
// services and serves HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("postgres", cfg.Database.PostgresEnabled()),
	)

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	var foodsLimit middleware.Middleware
	if cfg.RateLimit.FoodsPerMinute > 0 {
		rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer rl.Stop()
		foodsLimit = rl.Limit(cfg.RateLimit.FoodsPerMinute)
	}

	components := make(map[string]rest.Pinger, len(c.Stores))
	for name, s := range c.Stores {
		components[name] = s
	}

	handler := rest.NewRouter(rest.RouterDeps{
		Food:       rest.NewFoodHandler(c.Food, logger),
		Journal:    rest.NewJournalHandler(c.Journal, logger),
		Health:     rest.NewHealthHandler(c.JournalStore, components, BuildVersion()),
		FoodsLimit: foodsLimit,
		Middleware: []middleware.Middleware{
			middleware.RequestID(),
			middleware.Logger(logger),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
		},
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
