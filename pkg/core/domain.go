// Package core holds the tracker's domain: the Session aggregate, its row types and the
// storage port the persistence layer talks to.
package core

import (
	"fmt"
	"strconv"
)

// ID identifies a row within a collection. It is assigned once, when the row is created.
type ID uint32

// String renders the identifier in decimal form.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseID parses a decimal identifier as printed by ID.String.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid row id %q: %w", s, err)
	}
	return ID(v), nil
}

// Row is implemented by every collection entity.
// T is the entity type itself, so edits return a fresh value instead of mutating in place.
type Row[T any] interface {
	RowID() ID
	WithID(id ID) T
	// WithField returns a copy with the named field set to value.
	// Field names are the persisted (JSON) names.
	WithField(field, value string) (T, error)
}

// Status is the lifecycle state of an activity, todo or action item.
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in-progress"
	StatusBlocked    Status = "blocked"
	StatusPending    Status = "pending"
	StatusDone       Status = "done"
	StatusOpen       Status = "open"
)

// Priority ranks an activity.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Declared value sets. Values read back from storage are not checked against these.
var (
	ActivityStatuses = []Status{StatusCompleted, StatusInProgress, StatusBlocked}
	TodoStatuses     = []Status{StatusPending, StatusDone}
	ActionStatuses   = []Status{StatusOpen, StatusDone}
	Priorities       = []Priority{PriorityHigh, PriorityMedium, PriorityLow}
)

// MeetingInfo is the singleton header of a session.
type MeetingInfo struct {
	Date      string `json:"date" yaml:"date"`
	Time      string `json:"time" yaml:"time"`
	Attendees string `json:"attendees" yaml:"attendees"`
	Location  string `json:"location" yaml:"location"`
}

// WithField returns a copy of m with the named field set.
func (m MeetingInfo) WithField(field, value string) (MeetingInfo, error) {
	switch field {
	case "date":
		if err := checkDate(value); err != nil {
			return m, err
		}
		m.Date = value
	case "time":
		if err := checkClock(value); err != nil {
			return m, err
		}
		m.Time = value
	case "attendees":
		m.Attendees = value
	case "location":
		m.Location = value
	default:
		return m, fieldError("meetingInfo", field)
	}
	return m, nil
}

// AgendaItem is one topic of the meeting.
// TimeAlloc is kept in its textual form (minutes) to match the persisted record.
type AgendaItem struct {
	ID        ID     `json:"id" yaml:"id"`
	Topic     string `json:"topic" yaml:"topic"`
	TimeAlloc string `json:"timeAlloc" yaml:"timeAlloc"`
	Notes     string `json:"notes" yaml:"notes"`
}

func (a AgendaItem) RowID() ID { return a.ID }

func (a AgendaItem) WithID(id ID) AgendaItem {
	a.ID = id
	return a
}

func (a AgendaItem) WithField(field, value string) (AgendaItem, error) {
	switch field {
	case "topic":
		a.Topic = value
	case "timeAlloc":
		a.TimeAlloc = ClampTimeAlloc(value)
	case "notes":
		a.Notes = value
	default:
		return a, fieldError("agendaItems", field)
	}
	return a, nil
}

// Activity is a daily activity with progress tracking.
type Activity struct {
	ID       ID       `json:"id" yaml:"id"`
	Activity string   `json:"activity" yaml:"activity"`
	Status   Status   `json:"status" yaml:"status"`
	Priority Priority `json:"priority" yaml:"priority"`
	DueDate  string   `json:"dueDate" yaml:"dueDate"`
}

func (a Activity) RowID() ID { return a.ID }

func (a Activity) WithID(id ID) Activity {
	a.ID = id
	return a
}

func (a Activity) WithField(field, value string) (Activity, error) {
	switch field {
	case "activity":
		a.Activity = value
	case "status":
		s, err := checkStatus(value, ActivityStatuses)
		if err != nil {
			return a, err
		}
		a.Status = s
	case "priority":
		p, err := checkPriority(value)
		if err != nil {
			return a, err
		}
		a.Priority = p
	case "dueDate":
		if err := checkDate(value); err != nil {
			return a, err
		}
		a.DueDate = value
	default:
		return a, fieldError("dailyActivities", field)
	}
	return a, nil
}

// Todo is a task assigned to someone.
type Todo struct {
	ID         ID     `json:"id" yaml:"id"`
	Task       string `json:"task" yaml:"task"`
	AssignedTo string `json:"assignedTo" yaml:"assignedTo"`
	DueDate    string `json:"dueDate" yaml:"dueDate"`
	Status     Status `json:"status" yaml:"status"`
}

func (t Todo) RowID() ID { return t.ID }

func (t Todo) WithID(id ID) Todo {
	t.ID = id
	return t
}

func (t Todo) WithField(field, value string) (Todo, error) {
	switch field {
	case "task":
		t.Task = value
	case "assignedTo":
		t.AssignedTo = value
	case "dueDate":
		if err := checkDate(value); err != nil {
			return t, err
		}
		t.DueDate = value
	case "status":
		s, err := checkStatus(value, TodoStatuses)
		if err != nil {
			return t, err
		}
		t.Status = s
	default:
		return t, fieldError("todos", field)
	}
	return t, nil
}

// ActionItem is a follow-up coming out of the meeting.
type ActionItem struct {
	ID       ID     `json:"id" yaml:"id"`
	Action   string `json:"action" yaml:"action"`
	Owner    string `json:"owner" yaml:"owner"`
	Deadline string `json:"deadline" yaml:"deadline"`
	Status   Status `json:"status" yaml:"status"`
}

func (a ActionItem) RowID() ID { return a.ID }

func (a ActionItem) WithID(id ID) ActionItem {
	a.ID = id
	return a
}

func (a ActionItem) WithField(field, value string) (ActionItem, error) {
	switch field {
	case "action":
		a.Action = value
	case "owner":
		a.Owner = value
	case "deadline":
		if err := checkDate(value); err != nil {
			return a, err
		}
		a.Deadline = value
	case "status":
		s, err := checkStatus(value, ActionStatuses)
		if err != nil {
			return a, err
		}
		a.Status = s
	default:
		return a, fieldError("actionItems", field)
	}
	return a, nil
}

// Session is the aggregate root: the unit of persistence and export.
type Session struct {
	MeetingInfo MeetingInfo  `json:"meetingInfo" yaml:"meetingInfo"`
	AgendaItems []AgendaItem `json:"agendaItems" yaml:"agendaItems"`
	Activities  []Activity   `json:"dailyActivities" yaml:"dailyActivities"`
	Todos       []Todo       `json:"todos" yaml:"todos"`
	ActionItems []ActionItem `json:"actionItems" yaml:"actionItems"`
	Notes       string       `json:"notes" yaml:"notes"`
}

// Clone returns a copy of s that shares no slices with it.
func (s Session) Clone() Session {
	out := s
	out.AgendaItems = append([]AgendaItem(nil), s.AgendaItems...)
	out.Activities = append([]Activity(nil), s.Activities...)
	out.Todos = append([]Todo(nil), s.Todos...)
	out.ActionItems = append([]ActionItem(nil), s.ActionItems...)
	return out
}
