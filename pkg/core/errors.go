package core

import "errors"

// Common errors.
var (
	ErrNotFound          = errors.New("record not found")
	ErrReadOnly          = errors.New("store is in read-only mode")
	ErrUnknownField      = errors.New("unknown field")
	ErrInvalidValue      = errors.New("invalid value")
	ErrUnknownCollection = errors.New("unknown collection")
)
