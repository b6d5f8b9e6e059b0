package core

import (
	"context"
	"fmt"
)

// Store is the durable key-value port the tracker persists through.
// Adhering to this interface keeps the tracker independent of the
// storage mechanism (files, SQLite, memory).
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Initialize ensures the underlying storage is ready (directories, schema).
	Initialize(ctx context.Context) error
}

// Watchable is implemented by stores that can report changes made by other writers.
type Watchable interface {
	// Watch emits an event whenever a key matching pattern changes.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

// EventType represents the type of change in the store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a stored record.
type Event struct {
	Type      EventType
	Key       string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Key)
}
