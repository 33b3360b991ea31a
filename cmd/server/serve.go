package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"calling-tracker-backend/internal/api/routes"
	"calling-tracker-backend/internal/database"
	"calling-tracker-backend/internal/metrics"
	"calling-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveRun(cmd)
		},
	}
}

func serveRun(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg, &database.Options{}, 60, time.Second)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	var m *metrics.Metrics
	deps := routes.Dependencies{}
	opts := []service.Option{}
	if cfg.MetricsEnabled {
		m = metrics.New()
		deps.Metrics = m
		opts = append(opts, service.WithRecorder(m))
	}

	var recorder service.Recorder
	if m != nil {
		recorder = m
	}
	syncService := service.NewSyncService(cfg.SyncCommand, time.Duration(cfg.SyncTimeoutSec)*time.Second, recorder)
	defer syncService.Close()

	deps.Sync = syncService
	deps.CallingChanges = service.NewCallingChangeService(db, service.NewValidator(), opts...)

	router, err := routes.SetupRoutes(db, cfg, deps)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logrus.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
