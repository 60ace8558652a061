package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brk3/habittracker/internal/importer"
	"github.com/brk3/habittracker/internal/storage"
)

var importCompleted bool

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import habits from a habits.json or completed_habits.json file",
	Long: `The "import" command loads a JSON array of habit records with "tracked_data"
check-ins (dates as "YYYY-MM-DD HH:MM:SS" or "YYYY-MM-DD") into the database. Every
record is validated first; nothing is written if any record is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st storage.Store) error {
			n, err := importer.ImportFile(st, args[0], importCompleted)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d habits\n", n)
			return nil
		})
	},
}

func init() {
	importCmd.Flags().BoolVar(&importCompleted, "completed", false, "import into the completed list")
	rootCmd.AddCommand(importCmd)
}
