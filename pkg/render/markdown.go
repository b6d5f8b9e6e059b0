package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/agenda/pkg/core"
)

// DefaultStyle is the glamour style used when none is given. A fixed style avoids the
// terminal background query done by auto styling.
const DefaultStyle = "dark"

// Markdown returns the printable view of a session.
func Markdown(s core.Session) string {
	var b strings.Builder
	mi := s.MeetingInfo

	b.WriteString("# Meeting Agenda\n\n")
	fmt.Fprintf(&b, "**Date:** %s  \n", cell(mi.Date))
	fmt.Fprintf(&b, "**Time:** %s  \n", cell(mi.Time))
	fmt.Fprintf(&b, "**Attendees:** %s  \n", cell(mi.Attendees))
	fmt.Fprintf(&b, "**Location:** %s\n\n", cell(mi.Location))

	fmt.Fprintf(&b, "## Agenda (%d min total)\n\n", core.TotalAllocatedMinutes(s.AgendaItems))
	for i, it := range s.AgendaItems {
		fmt.Fprintf(&b, "%d. **%s** (%s min)", i+1, cell(it.Topic), it.TimeAlloc)
		if it.Notes != "" {
			fmt.Fprintf(&b, ": %s", it.Notes)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n## Daily Activities\n\n")
	b.WriteString("| Activity | Status | Priority | Due |\n|---|---|---|---|\n")
	for _, a := range s.Activities {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", cell(a.Activity), a.Status, a.Priority, cell(a.DueDate))
	}

	b.WriteString("\n## To-Dos\n\n")
	b.WriteString("| Task | Assigned To | Due | Status |\n|---|---|---|---|\n")
	for _, t := range s.Todos {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", cell(t.Task), cell(t.AssignedTo), cell(t.DueDate), t.Status)
	}

	b.WriteString("\n## Action Items\n\n")
	b.WriteString("| Action | Owner | Deadline | Status |\n|---|---|---|---|\n")
	for _, a := range s.ActionItems {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", cell(a.Action), cell(a.Owner), cell(a.Deadline), a.Status)
	}

	if strings.TrimSpace(s.Notes) != "" {
		b.WriteString("\n## Notes\n\n")
		b.WriteString(s.Notes)
		b.WriteString("\n")
	}
	return b.String()
}

// cell keeps user text from breaking the table layout.
func cell(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "-"
	}
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// Print renders the Markdown view for a terminal of the given width.
// An empty style selects DefaultStyle; "notty" gives plain output.
func Print(w io.Writer, s core.Session, width int, style string) error {
	if style == "" {
		style = DefaultStyle
	}
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(Markdown(s))
	if err != nil {
		return fmt.Errorf("failed to render session: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
