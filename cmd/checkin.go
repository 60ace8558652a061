package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brk3/habittracker/internal/analytics"
	"github.com/brk3/habittracker/internal/storage"
	"github.com/brk3/habittracker/internal/tracker"
)

var checkInCompleted bool

var checkInCmd = &cobra.Command{
	Use:   "checkin NAME",
	Short: "Record a check-in for a habit",
	Long: `The "checkin" command records today's check-in for a habit. Only one check-in
per day (daily habits) or per ISO week (weekly habits) is accepted. Pass --completed
to count the check-in towards the habit's goal; reaching the goal moves the habit
to the completed list.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st storage.Store) error {
			t := tracker.New(st, clock)
			res, err := t.CheckIn(args[0], checkInCompleted)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res.Completed {
				fmt.Fprintf(out, "Congratulations! You have completed the habit %q!\n", res.Habit.Name)
				return nil
			}
			streak, err := analytics.StreakFor(res.Habit, t.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Check-in successful! %s: progress %d/%d, current streak %d\n",
				res.Habit.Name, res.Habit.Progress, res.Habit.Goal, streak)
			return nil
		})
	},
}

func init() {
	checkInCmd.Flags().BoolVarP(&checkInCompleted, "completed", "c", false, "count this check-in towards the goal")
	rootCmd.AddCommand(checkInCmd)
}
