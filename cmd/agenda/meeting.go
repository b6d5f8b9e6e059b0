package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/agenda/pkg/tracker"
)

var meetingCmd = &cobra.Command{
	Use:   "meeting [field value]",
	Short: "Show or edit the meeting info",
	Long: fmt.Sprintf(`Without arguments, meeting prints the meeting info.
With a field and a value it edits that field. Fields: %s.
Dates use YYYY-MM-DD and times HH:MM.`, strings.Join(tracker.MeetingFields, ", ")),
	Example: `  agenda meeting location "Room 4"
  agenda meeting attendees Ana, Bo, Cy`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return fmt.Errorf("missing value for %q", args[0])
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		tr := openTracker(ctx)
		defer tr.Close()

		if len(args) == 0 {
			mi := tr.Session().MeetingInfo
			fmt.Printf("date:      %s\ntime:      %s\nattendees: %s\nlocation:  %s\n",
				mi.Date, mi.Time, mi.Attendees, mi.Location)
			return
		}

		if err := tr.SetMeetingField(ctx, args[0], strings.Join(args[1:], " ")); err != nil {
			fatal("Failed to update meeting info", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(meetingCmd)
}
