package main

import (
	"fmt"

	"github.com/gdugdh24/topfive-backend/internal/config"
	"github.com/gdugdh24/topfive-backend/internal/infrastructure/database"
	"github.com/gdugdh24/topfive-backend/pkg/log"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var dir string

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}
	migrateCmd.PersistentFlags().StringVar(&dir, "dir", "", "migrations directory (defaults to MIGRATIONS_PATH)")

	run := func(up bool) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadDatabase()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if dir == "" {
				dir = cfg.MigrationsPath
			}

			logger := log.New(cfg.Server.Env, cfg.Logging.Level)
			if err := database.Migrate(&cfg.Database, dir, up); err != nil {
				logger.Error("migration failed", "dir", dir, "up", up, "err", err)
				return err
			}
			logger.Info("migrations applied", "dir", dir, "up", up)
			return nil
		}
	}

	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all up migrations",
			RunE:  run(true),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Revert all migrations",
			RunE:  run(false),
		},
	)
	return migrateCmd
}
