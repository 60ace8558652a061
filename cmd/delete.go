package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brk3/habittracker/internal/storage"
	"github.com/brk3/habittracker/internal/tracker"
)

var deleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete an active habit and its check-ins",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st storage.Store) error {
			if err := tracker.New(st, clock).Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "The habit %q has been deleted.\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
