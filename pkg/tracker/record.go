package tracker

import (
	"time"

	"github.com/aretw0/agenda/pkg/core"
)

// record is the persisted shape. Pointers tell "absent" apart from "empty",
// which the repair rules below need.
type record struct {
	MeetingInfo *core.MeetingInfo `json:"meetingInfo"`
	AgendaItems []core.AgendaItem `json:"agendaItems"`
	Activities  []core.Activity   `json:"dailyActivities"`
	Todos       []core.Todo       `json:"todos"`
	ActionItems []core.ActionItem `json:"actionItems"`
	Notes       *string           `json:"notes"`
}

func toRecord(s core.Session) record {
	mi := s.MeetingInfo
	notes := s.Notes
	return record{
		MeetingInfo: &mi,
		AgendaItems: s.AgendaItems,
		Activities:  s.Activities,
		Todos:       s.Todos,
		ActionItems: s.ActionItems,
		Notes:       &notes,
	}
}

// repair turns a decoded record into a usable session.
//
// Empty (or missing) lists get one fresh row built from the add template; non-empty lists are adopted as-is,
// without per-field checks. Meeting info is adopted verbatim when present and left at
// its cold-start value when the record has none. Missing notes become "".
func (r record) repair(now time.Time) core.Session {
	s := core.Session{MeetingInfo: core.DefaultMeetingInfo(now)}
	if r.MeetingInfo != nil {
		s.MeetingInfo = *r.MeetingInfo
	}

	s.AgendaItems = r.AgendaItems
	if len(s.AgendaItems) == 0 {
		s.AgendaItems = []core.AgendaItem{core.AgendaTemplate().WithID(core.NewID())}
	}
	s.Activities = r.Activities
	if len(s.Activities) == 0 {
		s.Activities = []core.Activity{core.SeedActivity()}
	}
	s.Todos = r.Todos
	if len(s.Todos) == 0 {
		s.Todos = []core.Todo{core.SeedTodo()}
	}
	s.ActionItems = r.ActionItems
	if len(s.ActionItems) == 0 {
		s.ActionItems = []core.ActionItem{core.SeedActionItem()}
	}

	if r.Notes != nil {
		s.Notes = *r.Notes
	}
	return s
}
