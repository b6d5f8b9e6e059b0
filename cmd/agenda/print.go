package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/agenda/pkg/render"
)

var (
	printWidth int
	printStyle string
	printRaw   bool
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print a formatted view of the session",
	Long:  `Print renders the whole session as a document. --raw emits the Markdown source.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		tr := openTracker(context.Background())
		defer tr.Close()

		s := tr.Session()
		if printRaw {
			os.Stdout.WriteString(render.Markdown(s))
			return
		}
		if err := render.Print(os.Stdout, s, printWidth, printStyle); err != nil {
			fatal("Failed to print session", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
	printCmd.Flags().IntVarP(&printWidth, "width", "w", 80, "Word wrap width")
	printCmd.Flags().StringVar(&printStyle, "style", render.DefaultStyle, "Style (dark, light, notty, ...)")
	printCmd.Flags().BoolVar(&printRaw, "raw", false, "Print Markdown without styling")
}
