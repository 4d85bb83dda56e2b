package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dosada05/tournament-progression/config"
	"github.com/Dosada05/tournament-progression/middleware"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Args:  cobra.ExactArgs(0),
	Short: "Issue a bearer token for the organizer API",
}

func init() {
	p := tokenCmd.Flags()
	userID := p.IntP("user", "u", 1, "user id stored in the token")
	role := p.StringP("role", "r", middleware.RoleOrganizer, "role: organizer or admin")
	ttl := p.Duration("ttl", 24*time.Hour, "token lifetime")

	tokenCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if *role != middleware.RoleOrganizer && *role != middleware.RoleAdmin {
			return fmt.Errorf("unknown role %q", *role)
		}
		if *userID <= 0 || *ttl <= 0 {
			return errors.New("user and ttl must be positive")
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}

		signed, err := middleware.SignToken([]byte(cfg.JWTSecretKey), *userID, *role, *ttl)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), signed)
		return nil
	}
}
