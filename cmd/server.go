package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brk3/habittracker/internal/logger"
	"github.com/brk3/habittracker/internal/server"
	"github.com/brk3/habittracker/internal/storage"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st storage.Store) error {
			logger.Info("Starting server", "addr", cfg.ListenAddr, "db_path", cfg.DBPath, "auth", cfg.AuthToken != "")
			return server.New(cfg, st, clock).ListenAndServe()
		})
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
