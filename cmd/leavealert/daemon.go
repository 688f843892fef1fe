package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/longwapps/leave-alert/internal/task"
)

// newDaemonCommand creates the 'daemon' command: a thin scheduling wrapper firing the daily
// reminder and notification at fixed wall-clock times
func newDaemonCommand() *cobra.Command {
	var remindAt string
	var notifyAt string

	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Run the daily reminder and notification on a fixed schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, closer, err := setup()
			if err != nil {
				return err
			}
			defer closer()

			location, err := service.Config.Location()
			if err != nil {
				return fmt.Errorf("invalid timezone %q: %w", service.Config.Timezone, err)
			}
			remindHour, remindMinute, err := parseClock(remindAt)
			if err != nil {
				return err
			}
			notifyHour, notifyMinute, err := parseClock(notifyAt)
			if err != nil {
				return err
			}

			reminderTask := task.NewDaily(func() {
				date, err := resolveDate(service.Config, "", 0)
				if err == nil {
					err = service.SendReminder(context.Background(), date)
				}
				if err != nil {
					log.Error().Err(err).Msg("the reminder run failed")
				}
			}, remindHour, remindMinute, location)
			reminderTask.Start()
			defer reminderTask.Stop()

			notificationTask := task.NewDaily(func() {
				date, err := resolveDate(service.Config, "", 1)
				if err == nil {
					err = service.SendNotification(context.Background(), date, nil)
				}
				if err != nil {
					log.Error().Err(err).Msg("the notification run failed")
				}
			}, notifyHour, notifyMinute, location)
			notificationTask.Start()
			defer notificationTask.Stop()

			// Expire old dispatch ledger entries in the background
			cleanupTask := task.NewRepeating(func() {
				n, err := service.CleanupLedger(context.Background())
				if err != nil {
					log.Error().Err(err).Msg("could not clean up the dispatch ledger")
				} else if n > 0 {
					log.Info().Int("amount", n).Msg("expired dispatch ledger entries cleaned up")
				}
			}, 12*time.Hour)
			cleanupTask.Start()
			defer cleanupTask.Stop(false)

			log.Info().Str("remind_at", remindAt).Str("notify_at", notifyAt).Msg("daemon running")

			// Wait for the daemon to be terminated
			shutdown := make(chan os.Signal, 1)
			signal.Notify(shutdown, os.Interrupt)
			<-shutdown
			log.Info().Msg("shutting down...")
			return nil
		},
	}
	cmd.Flags().StringVar(&remindAt, "remind-at", "08:00", "wall-clock time (HH:MM) of the daily reminder")
	cmd.Flags().StringVar(&notifyAt, "notify-at", "17:00", "wall-clock time (HH:MM) of the daily advance notification")
	return cmd
}

// parseClock parses a 'HH:MM' wall-clock time
func parseClock(raw string) (int, int, error) {
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid clock time %q (expected HH:MM)", raw)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid clock time %q (expected HH:MM)", raw)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid clock time %q (expected HH:MM)", raw)
	}
	return hour, minute, nil
}
