package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/agenda/pkg/core"
)

var setCmd = &cobra.Command{
	Use:   "set <collection> <id> <field> <value>",
	Short: "Edit one field of a row",
	Long: `Set replaces one field of one row. Enumerated fields accept:

  activities status:   completed, in-progress, blocked
  activities priority: high, medium, low
  todos status:        pending, done
  actions status:      open, done

Dates use YYYY-MM-DD. An agenda timeAlloc below 1 is stored as 1.`,
	Args: cobra.MinimumNArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		c := parseCollection(args[0])
		id, err := core.ParseID(args[1])
		if err != nil {
			fatal("Invalid id", err)
		}
		field := args[2]
		value := strings.Join(args[3:], " ")

		ctx := context.Background()
		tr := openTracker(ctx)
		defer tr.Close()

		if !tr.Has(c, id) {
			fmt.Fprintf(os.Stderr, "no %s row with id %s, nothing changed\n", c, id)
			return
		}
		if err := tr.Update(ctx, c, id, field, value); err != nil {
			fatal("Failed to update row", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
