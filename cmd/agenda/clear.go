package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/agenda/internal/prompt"
	"github.com/aretw0/agenda/pkg/tracker"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the stored session and start over",
	Long:  `Clear asks for confirmation, then deletes the stored session. Declining changes nothing.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		tr := openTracker(ctx)
		defer tr.Close()

		var confirm tracker.Confirmer = prompt.Confirmer{}
		if clearYes {
			confirm = tracker.Always(true)
		}

		ok, err := tr.Reset(ctx, confirm)
		if err != nil {
			fatal("Failed to clear", err)
		}
		if !ok {
			fmt.Println("Nothing changed.")
			return
		}
		fmt.Println("Session cleared.")
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Skip the confirmation prompt")
}
