package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/agenda/pkg/core"
)

// Text writes the compact listing used by `agenda show`. Every row carries its id so it
// can be addressed by the editing commands.
func Text(w io.Writer, s core.Session) error {
	var b strings.Builder

	mi := s.MeetingInfo
	fmt.Fprintln(&b, titleStyle.Render("Meeting"))
	fmt.Fprintf(&b, "  %s %s", orDash(mi.Date), orDash(mi.Time))
	if mi.Location != "" {
		fmt.Fprintf(&b, " @ %s", mi.Location)
	}
	fmt.Fprintln(&b)
	if mi.Attendees != "" {
		fmt.Fprintf(&b, "  attendees: %s\n", mi.Attendees)
	}

	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render("Agenda"),
		mutedStyle.Render(fmt.Sprintf("(%d min)", core.TotalAllocatedMinutes(s.AgendaItems))))
	for i, it := range s.AgendaItems {
		fmt.Fprintf(&b, "  %d. [%s] %s %s\n", i+1, it.ID, orDash(it.Topic), mutedStyle.Render(it.TimeAlloc+" min"))
		if it.Notes != "" {
			fmt.Fprintf(&b, "       %s\n", it.Notes)
		}
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, titleStyle.Render("Daily Activities"))
	for _, a := range s.Activities {
		fmt.Fprintf(&b, "  [%s] %s %s %s%s\n", a.ID, orDash(a.Activity), StatusBadge(a.Status), PriorityBadge(a.Priority), due(a.DueDate))
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, titleStyle.Render("To-Dos"))
	for _, t := range s.Todos {
		fmt.Fprintf(&b, "  [%s] %s %s%s%s\n", t.ID, orDash(t.Task), StatusBadge(t.Status), owner(t.AssignedTo), due(t.DueDate))
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, titleStyle.Render("Action Items"))
	for _, a := range s.ActionItems {
		fmt.Fprintf(&b, "  [%s] %s %s%s%s\n", a.ID, orDash(a.Action), StatusBadge(a.Status), owner(a.Owner), due(a.Deadline))
	}

	if s.Notes != "" {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, titleStyle.Render("Notes"))
		for _, line := range strings.Split(s.Notes, "\n") {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func due(d string) string {
	if d == "" {
		return ""
	}
	return mutedStyle.Render(" due " + d)
}

func owner(o string) string {
	if o == "" {
		return ""
	}
	return mutedStyle.Render(" @" + o)
}
