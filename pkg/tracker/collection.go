package tracker

import (
	"fmt"
	"strings"

	"github.com/aretw0/agenda/pkg/core"
)

// Collection names one of the four row lists of a session.
type Collection string

const (
	Agenda     Collection = "agenda"
	Activities Collection = "activities"
	Todos      Collection = "todos"
	Actions    Collection = "actions"
)

// Collections lists every collection in display order.
var Collections = []Collection{Agenda, Activities, Todos, Actions}

// ParseCollection accepts the short names above as well as the persisted list names.
func ParseCollection(s string) (Collection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "agenda", "agendaitems":
		return Agenda, nil
	case "activities", "activity", "dailyactivities":
		return Activities, nil
	case "todos", "todo":
		return Todos, nil
	case "actions", "action", "actionitems":
		return Actions, nil
	}
	return "", fmt.Errorf("%w: %q (expected one of %v)", core.ErrUnknownCollection, s, Collections)
}

// Fields lists the editable fields of the collection's rows.
func (c Collection) Fields() []string {
	switch c {
	case Agenda:
		return []string{"topic", "timeAlloc", "notes"}
	case Activities:
		return []string{"activity", "status", "priority", "dueDate"}
	case Todos:
		return []string{"task", "assignedTo", "dueDate", "status"}
	case Actions:
		return []string{"action", "owner", "deadline", "status"}
	}
	return nil
}

// MeetingFields lists the editable meeting info fields.
var MeetingFields = []string{"date", "time", "attendees", "location"}
