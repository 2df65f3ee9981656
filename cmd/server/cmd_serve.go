package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hotelhub/booking-system/internal/api"
	"github.com/hotelhub/booking-system/internal/infrastructure/db/mongo"
	"github.com/hotelhub/booking-system/internal/infrastructure/db/postgres"
	"github.com/hotelhub/booking-system/internal/infrastructure/db/redis"
	"github.com/hotelhub/booking-system/internal/pkg/config"
	"github.com/hotelhub/booking-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// hotelhub serve starts the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		log := logger.Init(logger.Options{
			Level:  cfg.LogLevel,
			Pretty: cfg.Env == "development",
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		db, err := postgres.Connect(cfg.Postgres.DSN)
		if err != nil {
			return err
		}
		if err := postgres.Migrate(db); err != nil {
			return err
		}

		mongoClient, mongoDB, err := mongo.Connect(ctx, cfg.Mongo)
		if err != nil {
			return err
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = mongoClient.Disconnect(disconnectCtx)
		}()

		rdb, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()

		e := api.NewRouter(cfg, db, mongoDB, rdb)

		errCh := make(chan error, 1)
		go func() {
			addr := ":" + cfg.Port
			log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
			if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("server: %w", err)
		case <-ctx.Done():
		}

		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	},
}
