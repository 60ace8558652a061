package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brk3/habittracker/internal/storage"
	"github.com/brk3/habittracker/internal/tracker"
)

var (
	createPeriodicity string
	createGoal        int
	createDescription string
)

var createCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a new habit",
	Long: `The "create" command defines a new daily or weekly habit with a target number
of completed periods.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st storage.Store) error {
			h, err := tracker.New(st, clock).Create(args[0], createPeriodicity, createGoal, createDescription)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s habit %q with a goal of %d\n", h.Periodicity, h.Name, h.Goal)
			return nil
		})
	},
}

func init() {
	createCmd.Flags().StringVarP(&createPeriodicity, "periodicity", "p", "daily", "daily or weekly")
	createCmd.Flags().IntVarP(&createGoal, "goal", "g", 1, "target number of completed days or weeks")
	createCmd.Flags().StringVarP(&createDescription, "description", "d", "", "free text description")
	rootCmd.AddCommand(createCmd)
}
