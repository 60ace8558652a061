package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/brk3/habittracker/internal/config"
	"github.com/brk3/habittracker/internal/logger"
	"github.com/brk3/habittracker/internal/storage"
	"github.com/brk3/habittracker/internal/storage/bolt"
	"github.com/brk3/habittracker/pkg/habit"
)

var (
	cfg     *config.Config
	nowFlag string
)

var rootCmd = &cobra.Command{
	Use:   "habits",
	Short: "Track daily and weekly habits and their streaks",
	Long: `
	Habits is a CLI tool to define recurring daily or weekly habits, check in on them,
	and query streak statistics: the active streak of a habit, the longest streak across
	all habits, and which streaks are broken.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if strings.EqualFold(cfg.LogFormat, "json") {
			logger.InitJSON(cfg.SlogLevel())
		} else {
			logger.Init(cfg.SlogLevel())
		}
		if nowFlag != "" {
			if _, err := time.ParseInLocation(habit.DateLayout, nowFlag, time.Local); err != nil {
				return fmt.Errorf("--now must be YYYY-MM-DD: %w", err)
			}
		}
		return nil
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&nowFlag, "now", "", "reference date (YYYY-MM-DD) used instead of today")
}

// clock returns the reference time for streak queries and check-ins.
func clock() time.Time {
	if nowFlag == "" {
		return time.Now()
	}
	d, _ := time.ParseInLocation(habit.DateLayout, nowFlag, time.Local)
	now := time.Now()
	return time.Date(d.Year(), d.Month(), d.Day(), now.Hour(), now.Minute(), now.Second(), 0, time.Local)
}

func openStore() (storage.Store, error) {
	st, err := bolt.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBPath, err)
	}
	return st, nil
}

// withStore opens the store for the duration of fn.
func withStore(fn func(st storage.Store) error) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st)
}

func printList(cmd *cobra.Command, title string, names []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, title)
	if len(names) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}
	for _, n := range names {
		fmt.Fprintf(out, "- %s\n", n)
	}
}
