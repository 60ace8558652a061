package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brk3/habittracker/internal/analytics"
	"github.com/brk3/habittracker/internal/storage"
)

var streakCmd = &cobra.Command{
	Use:   "streak [NAME]",
	Short: "Show the active streak of a habit, or the longest across all habits",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st storage.Store) error {
			habits, err := st.ListHabits()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				longest, err := analytics.LongestStreak(habits, clock())
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Longest streak: %d\n", longest)
				return nil
			}
			streak, err := analytics.StreakForHabit(habits, args[0], clock())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Streak for %q: %d\n", args[0], streak)
			return nil
		})
	},
}

var longestCmd = &cobra.Command{
	Use:   "longest",
	Short: "List the habits holding the longest active streak",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st storage.Store) error {
			habits, err := st.ListHabits()
			if err != nil {
				return err
			}
			names, err := analytics.HabitsWithLongestStreak(habits, clock())
			if err != nil {
				return err
			}
			printList(cmd, "Habits with the longest active streak:", names)
			return nil
		})
	},
}

var brokenCmd = &cobra.Command{
	Use:   "broken",
	Short: "List habits whose streak is broken",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st storage.Store) error {
			habits, err := st.ListHabits()
			if err != nil {
				return err
			}
			names, err := analytics.BrokenStreakHabits(habits, clock())
			if err != nil {
				return err
			}
			printList(cmd, "Broken streak habits:", names)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(longestCmd)
	rootCmd.AddCommand(brokenCmd)
}
