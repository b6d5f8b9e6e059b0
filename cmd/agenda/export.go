package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/agenda/pkg/tracker"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the session as JSON or YAML",
	Long: `Export writes a snapshot of the session. With --out the file is named
meeting-agenda-<date>.<ext> inside that directory; otherwise it goes to stdout.
The stored session is not changed.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		format, err := tracker.ParseFormat(exportFormat)
		if err != nil {
			fatal("Invalid format", err)
		}

		tr := openTracker(context.Background())
		defer tr.Close()

		if exportOut == "" {
			if err := tr.Export(os.Stdout, format); err != nil {
				fatal("Failed to export", err)
			}
			fmt.Println()
			return
		}

		path, err := tr.ExportToDir(exportOut, format)
		if err != nil {
			fatal("Failed to export", err)
		}
		fmt.Printf("Exported to %s\n", path)
	},
}

var exportsCmd = &cobra.Command{
	Use:   "exports [dir]",
	Short: "List export files in a directory",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		files, err := tracker.ListExports(dir)
		if err != nil {
			fatal("Failed to list exports", err)
		}
		for _, f := range files {
			fmt.Println(f)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(exportsCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (json, yaml)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Directory to write the export file into")
}
