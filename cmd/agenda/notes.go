package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	notesClear  bool
	notesAppend bool
)

var notesCmd = &cobra.Command{
	Use:   "notes [text|-]",
	Short: "Show or replace the meeting notes",
	Long: `Without arguments, notes prints the notes. With text it replaces them;
"-" reads the new notes from stdin.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		tr := openTracker(ctx)
		defer tr.Close()

		if len(args) == 0 && !notesClear {
			fmt.Println(tr.Session().Notes)
			return
		}

		var text string
		switch {
		case notesClear:
		case len(args) == 1 && args[0] == "-":
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal("Failed to read stdin", err)
			}
			text = strings.TrimRight(string(data), "\n")
		default:
			text = strings.Join(args, " ")
		}

		if notesAppend && !notesClear {
			if current := tr.Session().Notes; current != "" {
				text = current + "\n" + text
			}
		}

		if err := tr.SetNotes(ctx, text); err != nil {
			fatal("Failed to save notes", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(notesCmd)
	notesCmd.Flags().BoolVar(&notesClear, "clear", false, "Empty the notes")
	notesCmd.Flags().BoolVarP(&notesAppend, "append", "a", false, "Append a line instead of replacing")
}
