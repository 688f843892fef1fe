package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// newCheckCommand creates the 'check' command validating the configuration surface
func newCheckCommand() *cobra.Command {
	var live bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate credentials and roster, optionally probing a live portal login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, closer, err := setup()
			if err != nil {
				return err
			}
			defer closer()

			log.Info().
				Int("employees", len(service.Index.Employees)).
				Int("teams", len(service.Index.Teams)).
				Int("manual_leaves", len(service.Index.ManualLeaves)).
				Msg("roster loaded")

			findings := service.Check(context.Background(), live)
			for _, finding := range findings {
				log.Error().Err(finding).Msg("check failed")
			}
			if len(findings) > 0 {
				return fmt.Errorf("%d check(s) failed", len(findings))
			}
			log.Info().Msg("all checks passed")
			return nil
		},
	}
	cmd.Flags().BoolVar(&live, "live", false, "perform a real login handshake against the portal")
	return cmd
}
