package main

import (
	"context"
	"fmt"

	"github.com/gdugdh24/topfive-backend/internal/config"
	"github.com/gdugdh24/topfive-backend/internal/infrastructure/container"
	"github.com/gdugdh24/topfive-backend/pkg/log"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := log.New(cfg.Server.Env, cfg.Logging.Level)
	ctx := log.Into(cmd.Context(), logger)

	// Initialize dependency injection container
	app, err := container.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "err", err)
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("error closing application", "err", err)
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "err", err)
		}
		return err
	case <-ctx.Done():
	}

	// Graceful shutdown; the signal context is already cancelled
	if err := app.Server.Shutdown(context.WithoutCancel(ctx)); err != nil {
		logger.Error("server shutdown error", "err", err)
		return err
	}

	logger.Info("server exited properly")
	return nil
}
