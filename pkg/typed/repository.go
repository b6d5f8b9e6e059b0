package typed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aretw0/agenda/pkg/core"
)

// ErrDecode marks a stored value that exists but could not be decoded into T.
var ErrDecode = errors.New("stored value is not valid")

// Record wraps a stored value with the key it lives under.
// It acts as a typed view of one store entry.
type Record[T any] struct {
	Key   string
	Data  T
	Saver Saver[T] // Active Record reference interface
}

// Saver interface avoids tight coupling between Record and Repository.
type Saver[T any] interface {
	Save(ctx context.Context, rec *Record[T]) error
}

// Save persists the record using the attached saver.
func (r *Record[T]) Save(ctx context.Context) error {
	if r.Saver == nil {
		return fmt.Errorf("record %q is detached (missing Saver)", r.Key)
	}
	return r.Saver.Save(ctx, r)
}

// Repository wraps a core.Store to provide type-safe access.
// Values are encoded as compact JSON.
type Repository[T any] struct {
	store core.Store
}

// NewRepository creates a new type-safe wrapper around an existing store.
func NewRepository[T any](store core.Store) *Repository[T] {
	return &Repository[T]{store: store}
}

// Save encodes and persists a typed record.
func (r *Repository[T]) Save(ctx context.Context, rec *Record[T]) error {
	data, err := json.Marshal(rec.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal typed data: %w", err)
	}

	// Attach saver
	if rec.Saver == nil {
		rec.Saver = r
	}

	return r.store.Put(ctx, rec.Key, data)
}

// Get retrieves and decodes the record stored under key.
// A missing record yields core.ErrNotFound; an undecodable one yields ErrDecode.
func (r *Repository[T]) Get(ctx context.Context, key string) (*Record[T], error) {
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var data T
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: key %s: %v", ErrDecode, key, err)
	}

	return &Record[T]{
		Key:   key,
		Data:  data,
		Saver: r,
	}, nil
}

// Delete removes the record stored under key.
func (r *Repository[T]) Delete(ctx context.Context, key string) error {
	return r.store.Delete(ctx, key)
}
