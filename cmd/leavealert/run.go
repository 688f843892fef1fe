package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/longwapps/leave-alert/internal/dispatch"
)

// newRemindCommand creates the 'remind' command sending the same-day reminder
func newRemindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remind [date]",
		Short: "Send the reminder about team members on leave on the given date (default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, closer, err := setup()
			if err != nil {
				return err
			}
			defer closer()

			date, err := resolveDate(service.Config, argOrEmpty(args), 0)
			if err != nil {
				return err
			}
			return service.SendReminder(context.Background(), date)
		},
	}
}

// newNotifyCommand creates the 'notify' command sending the advance notification
func newNotifyCommand() *cobra.Command {
	var statuses []int

	cmd := &cobra.Command{
		Use:   "notify [date]",
		Short: "Send the advance notification about leaves starting on the given date (default: tomorrow)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, closer, err := setup()
			if err != nil {
				return err
			}
			defer closer()

			date, err := resolveDate(service.Config, argOrEmpty(args), 1)
			if err != nil {
				return err
			}
			return service.SendNotification(context.Background(), date, statuses)
		},
	}
	cmd.Flags().IntSliceVar(&statuses, "statuses", nil, "leave status codes to include (default: scheduled)")
	return cmd
}

// newSendCommand creates the 'send' command dispatching for an arbitrary date and mode
func newSendCommand() *cobra.Command {
	var mode string
	var statuses []int

	cmd := &cobra.Command{
		Use:   "send <date>",
		Short: "Send reminder or notification mail for an arbitrary date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, closer, err := setup()
			if err != nil {
				return err
			}
			defer closer()

			date, err := resolveDate(service.Config, args[0], 0)
			if err != nil {
				return err
			}
			switch dispatch.Mode(mode) {
			case dispatch.ModeReminder:
				return service.SendReminder(context.Background(), date)
			case dispatch.ModeNotification:
				return service.SendNotification(context.Background(), date, statuses)
			default:
				return fmt.Errorf("invalid mode %q (expected 'reminder' or 'notification')", mode)
			}
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(dispatch.ModeReminder), "dispatch mode ('reminder' or 'notification')")
	cmd.Flags().IntSliceVar(&statuses, "statuses", nil, "leave status codes to include in notification mode")
	return cmd
}

func argOrEmpty(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
