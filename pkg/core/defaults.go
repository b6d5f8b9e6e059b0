package core

import "time"

// Default field values. A fresh session seeds its agenda with a ten-minute slot,
// while rows added afterwards start at five minutes.
const (
	DefaultMeetingTime    = "10:00"
	SeedTimeAlloc         = "10"
	TemplateTimeAlloc     = "5"
	DefaultActivityStatus = StatusInProgress
	DefaultPriority       = PriorityMedium
	DefaultTodoStatus     = StatusPending
	DefaultActionStatus   = StatusOpen
)

// DefaultMeetingInfo dates the meeting on now's calendar day (UTC).
func DefaultMeetingInfo(now time.Time) MeetingInfo {
	return MeetingInfo{
		Date: now.UTC().Format(DateLayout),
		Time: DefaultMeetingTime,
	}
}

// AgendaTemplate is the field template used when a row is added.
func AgendaTemplate() AgendaItem {
	return AgendaItem{TimeAlloc: TemplateTimeAlloc}
}

func ActivityTemplate() Activity {
	return Activity{Status: DefaultActivityStatus, Priority: DefaultPriority}
}

func TodoTemplate() Todo {
	return Todo{Status: DefaultTodoStatus}
}

func ActionTemplate() ActionItem {
	return ActionItem{Status: DefaultActionStatus}
}

// SeedAgendaItem is the row a collection starts with (cold start and reset).
func SeedAgendaItem() AgendaItem {
	return AgendaItem{ID: NewID(), TimeAlloc: SeedTimeAlloc}
}

func SeedActivity() Activity { return ActivityTemplate().WithID(NewID()) }

func SeedTodo() Todo { return TodoTemplate().WithID(NewID()) }

func SeedActionItem() ActionItem { return ActionTemplate().WithID(NewID()) }

// NewSession builds the cold-start session: today's date, one empty row per collection
// and empty notes.
func NewSession(now time.Time) Session {
	return Session{
		MeetingInfo: DefaultMeetingInfo(now),
		AgendaItems: []AgendaItem{SeedAgendaItem()},
		Activities:  []Activity{SeedActivity()},
		Todos:       []Todo{SeedTodo()},
		ActionItems: []ActionItem{SeedActionItem()},
	}
}
