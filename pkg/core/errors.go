package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrReadOnly     = errors.New("store is in read-only mode")
	ErrNotFound     = errors.New("not found")
	ErrKeyNotFound  = errors.New("key not found")
	ErrCorrupt      = errors.New("document is corrupt")
	ErrInvalidTheme = errors.New("invalid theme")
)

// NotFoundError reports an unknown notebook or note ID.
type NotFoundError struct {
	Kind string // "notebook" or "note"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// Unwrap lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func notebookNotFound(id string) error {
	return &NotFoundError{Kind: "notebook", ID: id}
}

func noteNotFound(id string) error {
	return &NotFoundError{Kind: "note", ID: id}
}
