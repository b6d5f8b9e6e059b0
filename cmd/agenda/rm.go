package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/agenda/pkg/core"
)

var rmCmd = &cobra.Command{
	Use:     "rm <collection> <id>",
	Aliases: []string{"remove"},
	Short:   "Remove a row",
	Long:    `Remove deletes a row. The last row of a collection is always kept.`,
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c := parseCollection(args[0])
		id, err := core.ParseID(args[1])
		if err != nil {
			fatal("Invalid id", err)
		}

		ctx := context.Background()
		tr := openTracker(ctx)
		defer tr.Close()

		if !tr.Has(c, id) {
			fmt.Fprintf(os.Stderr, "no %s row with id %s, nothing changed\n", c, id)
			return
		}
		removed, err := tr.Remove(ctx, c, id)
		if err != nil {
			fatal("Failed to remove row", err)
		}
		if !removed {
			fmt.Fprintf(os.Stderr, "%s must keep at least one row\n", c)
			return
		}
		fmt.Printf("Removed %s %s\n", c, id)
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
