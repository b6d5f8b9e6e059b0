package core

import (
	"errors"
	"testing"
	"time"
)

func TestNewSession(t *testing.T) {
	now := time.Date(2026, 3, 9, 23, 30, 0, 0, time.FixedZone("X", -2*3600))
	s := NewSession(now)

	// 23:30 at UTC-2 is already the next day in UTC.
	if s.MeetingInfo.Date != "2026-03-10" {
		t.Errorf("expected date 2026-03-10, got %s", s.MeetingInfo.Date)
	}
	if s.MeetingInfo.Time != "10:00" {
		t.Errorf("expected time 10:00, got %s", s.MeetingInfo.Time)
	}
	if len(s.AgendaItems) != 1 || len(s.Activities) != 1 || len(s.Todos) != 1 || len(s.ActionItems) != 1 {
		t.Fatalf("expected one row per collection, got %+v", s)
	}
	if s.AgendaItems[0].TimeAlloc != "10" {
		t.Errorf("expected seed timeAlloc 10, got %s", s.AgendaItems[0].TimeAlloc)
	}
	if s.Activities[0].Status != StatusInProgress || s.Activities[0].Priority != PriorityMedium {
		t.Errorf("unexpected activity defaults: %+v", s.Activities[0])
	}
	if s.Todos[0].Status != StatusPending {
		t.Errorf("unexpected todo status: %s", s.Todos[0].Status)
	}
	if s.ActionItems[0].Status != StatusOpen {
		t.Errorf("unexpected action status: %s", s.ActionItems[0].Status)
	}
	if s.Notes != "" {
		t.Errorf("expected empty notes, got %q", s.Notes)
	}
}

func TestWithField(t *testing.T) {
	t.Run("Agenda Clamps TimeAlloc", func(t *testing.T) {
		a, err := AgendaItem{ID: 1, TimeAlloc: "10"}.WithField("timeAlloc", "0")
		if err != nil {
			t.Fatal(err)
		}
		if a.TimeAlloc != "1" {
			t.Errorf("expected 1, got %s", a.TimeAlloc)
		}
		if a.ID != 1 {
			t.Errorf("id changed: %d", a.ID)
		}
	})

	t.Run("Rejects Unknown Field", func(t *testing.T) {
		_, err := Todo{}.WithField("id", "5")
		if !errors.Is(err, ErrUnknownField) {
			t.Errorf("expected ErrUnknownField, got %v", err)
		}
	})

	t.Run("Rejects Undeclared Enum", func(t *testing.T) {
		_, err := Activity{}.WithField("status", "done")
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("expected ErrInvalidValue, got %v", err)
		}
		act, err := Activity{}.WithField("status", "blocked")
		if err != nil || act.Status != StatusBlocked {
			t.Errorf("expected blocked, got %v (%v)", act.Status, err)
		}
	})

	t.Run("Dates", func(t *testing.T) {
		if _, err := (ActionItem{}).WithField("deadline", "tomorrow"); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("expected ErrInvalidValue, got %v", err)
		}
		a, err := ActionItem{}.WithField("deadline", "")
		if err != nil || a.Deadline != "" {
			t.Errorf("empty deadline should clear: %v", err)
		}
		m, err := MeetingInfo{}.WithField("time", "14:45")
		if err != nil || m.Time != "14:45" {
			t.Errorf("expected 14:45, got %q (%v)", m.Time, err)
		}
	})
}

func TestSession_Clone(t *testing.T) {
	s := NewSession(time.Now())
	c := s.Clone()
	c.AgendaItems[0].Topic = "changed"
	if s.AgendaItems[0].Topic != "" {
		t.Error("clone shares agenda storage with original")
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("4294967295")
	if err != nil || id != ID(4294967295) {
		t.Fatalf("unexpected %d, %v", id, err)
	}
	if _, err := ParseID("4294967296"); err == nil {
		t.Error("expected overflow error")
	}
	if id.String() != "4294967295" {
		t.Errorf("unexpected String(): %s", id.String())
	}
}

func TestNewID_Distinct(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 64; i++ {
		seen[NewID()] = true
	}
	if len(seen) < 63 {
		t.Errorf("expected 64 (near-)distinct ids, got %d", len(seen))
	}
}
