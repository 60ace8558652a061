package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brk3/habittracker/internal/analytics"
	"github.com/brk3/habittracker/internal/storage"
	"github.com/brk3/habittracker/pkg/habit"
)

var listPeriodicity string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits",
	Long:  `The "list" command lists your tracked habits, optionally only the daily or weekly ones.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st storage.Store) error {
			habits, err := st.ListHabits()
			if err != nil {
				return err
			}
			if listPeriodicity == "" {
				printList(cmd, "All habits:", analytics.AllHabitNames(habits))
				return nil
			}
			p, err := habit.ParsePeriodicity(listPeriodicity)
			if err != nil {
				return err
			}
			printList(cmd, "Habits ("+string(p)+"):", analytics.HabitsByPeriodicity(habits, p))
			return nil
		})
	},
}

func init() {
	listCmd.Flags().StringVarP(&listPeriodicity, "periodicity", "p", "", "only list daily or weekly habits")
	rootCmd.AddCommand(listCmd)
}
