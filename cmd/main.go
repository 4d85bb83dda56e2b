package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

//	@title						Tournament Progression API
//	@version					1.0
//	@description				Groups, fixtures, standings and knockout brackets of football tournaments.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

var rootCmd = &cobra.Command{
	Use:           "tournament-progression",
	Short:         "Runs the tournament progression service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func main() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tokenCmd)

	logger := newLogger()
	slog.SetDefault(logger)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
