package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brk3/habittracker/internal/analytics"
	"github.com/brk3/habittracker/internal/storage"
)

var completedCmd = &cobra.Command{
	Use:   "completed",
	Short: "List habits whose goal has been reached",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st storage.Store) error {
			habits, err := st.ListCompleted()
			if err != nil {
				return err
			}
			printList(cmd, "Completed habits:", analytics.AllHabitNames(habits))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(completedCmd)
}
