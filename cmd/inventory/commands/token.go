package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/inventory-store/internal/auth"
	"github.com/spf13/cobra"
)

func newTokenCommand(a *app) *cobra.Command {
	var subject string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a bearer token accepted by serve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Server.JWTSecret == "" {
				return errors.New("server.jwt_secret is not configured")
			}
			if !cmd.Flags().Changed("ttl") {
				ttl = a.cfg.Server.TokenTTL
			}

			issuer, err := auth.NewTokenIssuer(a.cfg.Server.JWTSecret, ttl)
			if err != nil {
				return err
			}
			token, err := issuer.GenerateToken(subject)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "cli", "Token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime, 0 for no expiry (default from config)")
	return cmd
}
