package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/agenda/pkg/adapters/lifecycle"
	"github.com/aretw0/agenda/pkg/core"
	"github.com/aretw0/agenda/pkg/render"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the stored session and reprint it on every change",
	Long: `Watch keeps running and reloads the session whenever another process saves it.
The last write wins. Only the fs adapter supports watching.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		tr := openTracker(ctx)
		defer tr.Close()

		w, ok := tr.Store().(core.Watchable)
		if !ok {
			fatal("Cannot watch", fmt.Errorf("adapter %q does not report changes", adapter))
		}
		events, err := w.Watch(ctx, tr.Key())
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		src := lifecycle.NewSource(events, tr.Key())
		if err := src.Start(ctx); err != nil {
			fatal("Failed to start watcher", err)
		}

		if err := render.Text(os.Stdout, tr.Session()); err != nil {
			fatal("Failed to render session", err)
		}
		for ev := range src.Events() {
			slog.Debug("change received", "change", ev.String())
			tr.Reload(ctx)
			fmt.Printf("\n--- %s ---\n", ev)
			if err := render.Text(os.Stdout, tr.Session()); err != nil {
				fatal("Failed to render session", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
