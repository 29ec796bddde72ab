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

	"github.com/SscSPs/usdt_desk/internal/adapters/browser"
	"github.com/SscSPs/usdt_desk/internal/adapters/database/pgsql"
	"github.com/SscSPs/usdt_desk/internal/adapters/rates"
	portsrepo "github.com/SscSPs/usdt_desk/internal/core/ports/repositories"
	"github.com/SscSPs/usdt_desk/internal/core/services"
	"github.com/SscSPs/usdt_desk/internal/handlers"
	"github.com/SscSPs/usdt_desk/internal/middleware"
	"github.com/SscSPs/usdt_desk/migrations"
	"github.com/SscSPs/usdt_desk/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Initialize structured logger
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
		slog.SetDefault(logger)

		ctx, stop := signal.NotifyContext(cliContext(cmd, logger), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		repos := portsrepo.RepositoryProvider{}
		if cfg.DatabaseURL != "" {
			dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
			if err != nil {
				return fmt.Errorf("failed to initialize database pool: %w", err)
			}
			defer database.ClosePgxPool(dbPool)

			logger.Info("Running database migrations...")
			if err := database.RunMigrations(cfg.DatabaseURL, migrations.FS, logger); err != nil {
				return err
			}
			repos = pgsql.NewRepositoryProvider(dbPool)
		}

		var redisClient *redis.Client
		if cfg.RedisURL != "" {
			opts, err := redis.ParseURL(cfg.RedisURL)
			if err != nil {
				return fmt.Errorf("invalid REDIS_URL: %w", err)
			}
			redisClient = redis.NewClient(opts)
			defer redisClient.Close()
		}
		lim, err := middleware.NewLimiter(cfg.RateLimit, redisClient)
		if err != nil {
			return err
		}

		container := services.NewServiceContainer(services.Hosts{
			Rates:  rates.NewExchangeRateHostClient(cfg.RateAPIURL, cfg.RateAPITimeout),
			Opener: browser.NewOpener(),
			XEURL:  cfg.XEURL,
		}, repos)

		if cfg.IsProduction {
			gin.SetMode(gin.ReleaseMode)
		}

		r := gin.New()

		// Global middleware (logging, recovery)
		r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
		r.Use(middleware.CORS(cfg.CORSAllowedOrigins), middleware.RateLimit(lim))

		if err := r.SetTrustedProxies(nil); err != nil {
			return fmt.Errorf("failed to set trusted proxies: %w", err)
		}

		handlers.RegisterRoutes(r, container)

		srv := &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: r,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("Server starting", slog.String("port", cfg.Port), slog.Bool("operations_api", container.Operation != nil))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			logger.Info("Shutting down server...")
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server shutdown failed: %w", err)
			}
			return nil
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server failed to run: %w", err)
		}
	},
}
