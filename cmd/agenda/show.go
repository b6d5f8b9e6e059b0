package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/agenda/pkg/render"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current session",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		tr := openTracker(context.Background())
		defer tr.Close()

		if err := render.Text(os.Stdout, tr.Session()); err != nil {
			fatal("Failed to render session", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
