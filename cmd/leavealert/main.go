package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/longwapps/leave-alert/internal/alert"
	"github.com/longwapps/leave-alert/internal/config"
	"github.com/longwapps/leave-alert/internal/leave"
	"github.com/longwapps/leave-alert/internal/notify"
	"github.com/longwapps/leave-alert/internal/portal"
	"github.com/longwapps/leave-alert/internal/storage"
	"github.com/longwapps/leave-alert/internal/storage/memory"
	"github.com/longwapps/leave-alert/internal/storage/postgres"
)

var dryRun bool

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})

	root := &cobra.Command{
		Use:           "leavealert",
		Short:         "Notifies team members when a teammate is on leave",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "log messages instead of delivering them")
	root.AddCommand(newRemindCommand())
	root.AddCommand(newNotifyCommand())
	root.AddCommand(newSendCommand())
	root.AddCommand(newCheckCommand())
	root.AddCommand(newDaemonCommand())

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("the run failed")
		os.Exit(1)
	}
}

// setup loads the configuration and roster and wires the alert service.
// The returned closer shuts down the storage driver.
func setup() (*alert.Service, func(), error) {
	log.Info().Msg("loading configuration...")
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, nil, fmt.Errorf("could not load the configuration: %w", err)
	}
	if cfg.IsEnvProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	index, err := config.LoadRoster(cfg.RosterPath)
	if err != nil {
		return nil, nil, err
	}

	// Initialize the dispatch ledger storage driver
	var driver storage.Driver
	if cfg.PostgresDSN != "" {
		log.Info().Msg("initializing database connection...")
		driver = postgres.New(cfg.PostgresDSN)
	} else {
		driver = memory.New()
	}
	if err := driver.Initialize(context.Background()); err != nil {
		return nil, nil, fmt.Errorf("could not initialize the dispatch ledger storage: %w", err)
	}

	var notifier notify.Notifier = &notify.LogNotifier{}
	if dryRun {
		log.Info().Msg("dry run; messages will be logged instead of delivered")
	} else if !cfg.HasSMTP() {
		log.Warn().Msg("no mail transport configured; messages will be logged instead of delivered")
	} else {
		notifier = notify.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	}

	service := &alert.Service{
		Config:   cfg,
		Index:    index,
		Portal:   portal.NewClient(cfg.PortalBaseURL, cfg.HTTPTimeout),
		Storage:  driver,
		Notifier: notifier,
	}
	return service, driver.Close, nil
}

// resolveDate validates an explicitly given target date or derives one by adding dayOffset
// days to today in the configured timezone
func resolveDate(cfg *config.Config, arg string, dayOffset int) (string, error) {
	if arg != "" {
		if _, err := time.Parse(leave.DateFormat, arg); err != nil {
			return "", fmt.Errorf("invalid date %q (expected yyyy-MM-dd)", arg)
		}
		return arg, nil
	}
	location, err := cfg.Location()
	if err != nil {
		return "", fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	return time.Now().In(location).AddDate(0, 0, dayOffset).Format(leave.DateFormat), nil
}
