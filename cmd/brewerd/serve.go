package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"brewer-backend/internal/analytics"
	"brewer-backend/internal/api"
	"brewer-backend/internal/db"
	"brewer-backend/internal/modelcontroller"
	"brewer-backend/internal/notification"
	"brewer-backend/internal/screen"
	"brewer-backend/internal/session"
	"brewer-backend/internal/theme"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		gormDB, err := db.Init(&cfg.Database, logger)
		if err != nil {
			return err
		}

		units, err := modelcontroller.NewUnitsModelController(cfg.Units.Weight, cfg.Units.Temperature)
		if err != nil {
			return err
		}
		settings, err := modelcontroller.NewSequenceSettingsModelController(cfg.NewBrew.Sequence)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		webpushOptions := webpush.Options{
			VAPIDPublicKey:  cfg.Push.PublicKey,
			VAPIDPrivateKey: cfg.Push.PrivateKey,
			Subscriber:      cfg.Push.Subject,
			TTL:             cfg.Push.TTL,
		}

		var finished screen.BrewFinishedHandler
		var pool *notification.WorkerPool
		if cfg.Push.Enabled() {
			pool = notification.NewWorkerPool(cfg.WorkerPool.Size, gormDB, &webpushOptions, logger)
			pool.Start(ctx)
			finished = pool
		} else {
			logger.Warn("VAPID keys are not configured, brew notifications are disabled")
		}

		recorder := analytics.NewRecorder(logger)
		sessions := session.NewManager(gormDB, session.Options{
			TTL:      cfg.Session.TTL,
			Units:    units,
			Settings: settings,
			KeyValue: modelcontroller.NewCacheKeyValueStore(),
			Theme:    theme.FromConfig(cfg.Theme),
			Tracker:  recorder,
			Finished: finished,
		}, logger)

		handler := api.NewHandler(gormDB, sessions, &webpushOptions, recorder, logger)
		router := api.NewRouter(handler, api.RouterOptions{
			RateLimit: rate.Limit(cfg.Server.RateLimitPerSec),
			Burst:     cfg.Server.RateLimitBurst,
			CacheTTL:  cfg.Server.CacheTTL,
		})
		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
			Handler: router,
		}

		serveErr := make(chan error, 1)
		go func() {
			logger.Info("HTTP server starting", zap.Int("port", cfg.Server.Port))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
			close(serveErr)
		}()

		select {
		case err := <-serveErr:
			if err != nil {
				return fmt.Errorf("HTTP server ListenAndServe: %w", err)
			}
		case <-ctx.Done():
			logger.Info("shutdown signal received, stopping services")
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP server Shutdown: %w", err)
		}

		cancel()
		if pool != nil {
			pool.Wait()
		}
		logger.Info("server gracefully stopped")
		return nil
	},
}
