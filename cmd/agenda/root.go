package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/agenda"
	"github.com/aretw0/agenda/pkg/tracker"
)

var (
	verbose  bool
	dataDir  string
	adapter  string
	readOnly bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "agenda",
	Short: "Track a meeting agenda, daily activities, to-dos and action items",
	Long: `Agenda keeps one meeting session: meeting info, a timed agenda, daily activities,
to-dos, action items and notes. Every change is saved immediately and restored on the next run.

The data directory is --dir when given, otherwise the nearest .agenda directory above the
working directory, otherwise the per-user config directory.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "dir", "d", "", "Data directory")
	rootCmd.PersistentFlags().StringVar(&adapter, "adapter", "fs", "Storage adapter (fs, sqlite, memory)")
	rootCmd.PersistentFlags().BoolVar(&readOnly, "read-only", false, "Open the store without write access")
}

func resolveDir() string {
	wd, err := os.Getwd()
	if err != nil {
		fatal("Failed to get CWD", err)
	}
	dir, err := agenda.ResolveDir(dataDir, wd, "")
	if err != nil {
		fatal("Failed to resolve data directory", err)
	}
	return dir
}

// openTracker opens the tracker configured by the persistent flags.
func openTracker(ctx context.Context) *tracker.Tracker {
	dir := resolveDir()
	slog.Debug("opening tracker", "dir", dir, "adapter", adapter)

	tr, err := agenda.Open(ctx, dir,
		agenda.WithAdapter(adapter),
		agenda.WithReadOnly(readOnly),
		agenda.WithLogger(slog.Default()),
	)
	if err != nil {
		fatal("Failed to open agenda", err)
	}
	return tr
}

func parseCollection(name string) tracker.Collection {
	c, err := tracker.ParseCollection(name)
	if err != nil {
		fatal("Invalid collection", err)
	}
	return c
}
