package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/agenda/pkg/tracker"
)

var addFields []string

var addCmd = &cobra.Command{
	Use:   "add <collection>",
	Short: "Add a row to agenda, activities, todos or actions",
	Long: `Add appends a row built from the collection's defaults and prints its id.
Fields can be filled right away with --set field=value; if any of them is invalid,
no row is added.`,
	Example: `  agenda add agenda --set topic="Q4 roadmap" --set timeAlloc=15
  agenda add todos --set task="Book room" --set assignedTo=Ana`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := parseCollection(args[0])
		fields, err := parseFields(addFields)
		if err != nil {
			fatal("Invalid --set", err)
		}

		ctx := context.Background()
		tr := openTracker(ctx)
		defer tr.Close()

		id, err := tr.Add(ctx, c, fields...)
		if err != nil {
			fatal("Failed to add row", err)
		}

		fmt.Println(id)
	},
}

// parseFields splits field=value pairs. The value may itself contain "=".
func parseFields(pairs []string) ([]tracker.Field, error) {
	fields := make([]tracker.Field, 0, len(pairs))
	for _, kv := range pairs {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("expected field=value, got %q", kv)
		}
		fields = append(fields, tracker.Field{Name: strings.TrimSpace(name), Value: value})
	}
	return fields, nil
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringArrayVar(&addFields, "set", nil, "Set a field on the new row (field=value), repeatable")
}
