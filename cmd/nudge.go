package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/brk3/habittracker/internal/apiclient"
	"github.com/brk3/habittracker/internal/logger"
	"github.com/brk3/habittracker/internal/nudge"
	"github.com/brk3/habittracker/internal/nudge/resend"
)

var nudgeSchedule string

var nudgeCmd = &cobra.Command{
	Use:   "nudge",
	Short: "Email a reminder for at-risk and broken habit streaks",
	Long: `The "nudge" command asks the API server which streaks break tomorrow and which
are already broken, and emails a reminder through Resend when there are any. With
--schedule (a cron expression, e.g. "0 20 * * *") it keeps running and nudges on
that schedule.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Nudge.ResendAPIKey == "" {
			return fmt.Errorf("HABITS_RESEND_API_KEY environment variable is not set")
		}
		if cfg.Nudge.Email == "" {
			return fmt.Errorf("HABITS_NOTIFY_EMAIL environment variable is not set")
		}
		if nudgeSchedule == "" {
			nudgeSchedule = cfg.Nudge.Schedule
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		client := apiclient.New(cfg.APIBaseURL, cfg.AuthToken)
		n := &resend.ResendNotifier{
			ApiKey: cfg.Nudge.ResendAPIKey,
			Email:  cfg.Nudge.Email,
			From:   cfg.Nudge.From,
		}

		if nudgeSchedule == "" {
			_, err := nudge.Nudge(cmd.Context(), client, n)
			return err
		}
		return runScheduled(cmd.Context(), nudgeSchedule, func(ctx context.Context) {
			if _, err := nudge.Nudge(ctx, client, n); err != nil {
				logger.Error("Scheduled nudge failed", "error", err)
			}
		})
	},
}

// runScheduled runs job on schedule until ctx is cancelled or the process is
// interrupted.
func runScheduled(ctx context.Context, schedule string, job func(context.Context)) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { job(ctx) }); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}
	logger.Info("Nudge scheduler started", "schedule", schedule)
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	logger.Info("Nudge scheduler stopped")
	return nil
}

func init() {
	nudgeCmd.Flags().StringVar(&nudgeSchedule, "schedule", "", "cron expression to nudge on repeatedly")
	rootCmd.AddCommand(nudgeCmd)
}
