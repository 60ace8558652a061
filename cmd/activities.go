package cmd

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/brk3/habittracker/internal/analytics"
	"github.com/brk3/habittracker/internal/storage"
	"github.com/brk3/habittracker/pkg/habit"
)

var activitiesCmd = &cobra.Command{
	Use:   "activities NAME",
	Short: "Show the recorded check-ins of a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st storage.Store) error {
			h, found, err := st.GetHabit(args[0])
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("%w: %q", analytics.ErrHabitNotFound, args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Activities for %s:\n", h.Name)
			if len(h.CheckIns) == 0 {
				fmt.Fprintln(out, "No recorded activities for this habit.")
				return nil
			}
			today := habit.DateOf(clock())
			for _, c := range h.CheckIns {
				d, err := habit.ParseCheckInDate(c.Date)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "- %s (%s)\n", c.Date, relativeDay(d, today))
			}
			return nil
		})
	},
}

func relativeDay(d, today time.Time) string {
	if d.Equal(today) {
		return "today"
	}
	return humanize.RelTime(d, today, "ago", "from now")
}

func init() {
	rootCmd.AddCommand(activitiesCmd)
}
