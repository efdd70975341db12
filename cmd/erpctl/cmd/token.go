package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/ledger/internal/config"
	"github.com/MrJamesThe3rd/ledger/internal/http/auth"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the API",
		Example: `  # Token for the warehouse terminal, valid for a week
  erpctl token --subject warehouse --ttl 168h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if cfg.Auth.JWTSecret == "" {
				return errors.New("AUTH_JWT_SECRET is not set, the API accepts requests without a token")
			}

			if ttl <= 0 {
				return errors.New("--ttl must be positive")
			}

			token, err := auth.Issue(cfg.Auth.JWTSecret, subject, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "who the token is issued to")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "how long the token stays valid")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
