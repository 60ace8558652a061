package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brk3/habittracker/internal/analytics"
	"github.com/brk3/habittracker/internal/storage"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Summarise goal progress and current streak for every habit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st storage.Store) error {
			habits, err := st.ListHabits()
			if err != nil {
				return err
			}
			summaries, err := analytics.Summarize(habits, clock())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(summaries) == 0 {
				fmt.Fprintln(out, "No habits found.")
				return nil
			}
			for _, s := range summaries {
				fmt.Fprintf(out, "%s, Streak: %d\n", s, s.CurrentStreak)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
