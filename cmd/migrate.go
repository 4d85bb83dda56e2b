package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dosada05/tournament-progression/config"
	"github.com/Dosada05/tournament-progression/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Args:  cobra.ExactArgs(0),
	Short: "Apply pending database migrations",
}

func init() {
	list := migrateCmd.Flags().Bool("list", false, "print embedded migrations and exit")

	migrateCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if *list {
			names, err := db.MigrationNames()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		}

		logger := slog.Default()
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second, logger)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer dbConn.Close()

		applied, err := db.Migrate(ctx, dbConn, logger)
		if err != nil {
			return err
		}
		logger.Info("migrations complete", slog.Int("applied", applied))
		return nil
	}
}
