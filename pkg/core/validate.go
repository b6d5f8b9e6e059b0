package core

import (
	"fmt"
	"slices"
	"time"
)

// Layouts accepted by date and time fields. An empty value is always accepted.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

func checkDate(v string) error {
	if v == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, v); err != nil {
		return fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidValue, v)
	}
	return nil
}

func checkClock(v string) error {
	if v == "" {
		return nil
	}
	if _, err := time.Parse(TimeLayout, v); err != nil {
		return fmt.Errorf("%w: time %q must be HH:MM (24h)", ErrInvalidValue, v)
	}
	return nil
}

func checkStatus(v string, allowed []Status) (Status, error) {
	s := Status(v)
	if !slices.Contains(allowed, s) {
		return "", fmt.Errorf("%w: status %q (allowed: %v)", ErrInvalidValue, v, allowed)
	}
	return s, nil
}

func checkPriority(v string) (Priority, error) {
	p := Priority(v)
	if !slices.Contains(Priorities, p) {
		return "", fmt.Errorf("%w: priority %q (allowed: %v)", ErrInvalidValue, v, Priorities)
	}
	return p, nil
}

func fieldError(collection, field string) error {
	return fmt.Errorf("%w: %s has no editable field %q", ErrUnknownField, collection, field)
}
