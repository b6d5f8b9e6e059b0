// Package rows implements the copy-on-write list operations shared by every collection.
//
// Callers never mutate a collection in place: each operation returns either the
// original slice (nothing changed) or a new one, so "did anything change" is a
// cheap identity check.
package rows

import "github.com/aretw0/agenda/pkg/core"

// IDSource produces identifiers for new rows.
type IDSource func() core.ID

// Add appends a copy of template with a fresh identifier.
func Add[T core.Row[T]](list []T, template T, next IDSource) []T {
	if next == nil {
		next = core.NewID
	}
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	return append(out, template.WithID(next()))
}

// Update sets field to value on the row identified by id.
// An unknown id leaves the collection unchanged and is not an error;
// an unknown field or a rejected value is.
func Update[T core.Row[T]](list []T, id core.ID, field, value string) ([]T, error) {
	idx := Index(list, id)
	if idx < 0 {
		return list, nil
	}
	row, err := list[idx].WithField(field, value)
	if err != nil {
		return list, err
	}
	out := make([]T, len(list))
	copy(out, list)
	out[idx] = row
	return out, nil
}

// Remove drops the row identified by id, unless it is the last row left.
func Remove[T core.Row[T]](list []T, id core.ID) []T {
	if len(list) <= 1 {
		return list
	}
	idx := Index(list, id)
	if idx < 0 {
		return list
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:idx]...)
	return append(out, list[idx+1:]...)
}

// Index returns the position of the row identified by id, or -1.
func Index[T core.Row[T]](list []T, id core.ID) int {
	for i, row := range list {
		if row.RowID() == id {
			return i
		}
	}
	return -1
}

// Same reports whether a and b are the same collection value (same backing array and length).
func Same[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
