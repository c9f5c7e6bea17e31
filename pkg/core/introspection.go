package core

import (
	"time"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Key         string     `json:"key"`
	BackendType string     `json:"backend_type"`
	ReadOnly    bool       `json:"read_only"`
	Notebooks   int        `json:"notebooks"`
	Notes       int        `json:"notes"`
	Writes      int        `json:"writes"`
	LastWrite   *time.Time `json:"last_write,omitempty"`
	Backend     any        `json:"backend,omitempty"`
}

// State implements introspection.Introspectable.
// Counts reflect the mirror as of the last call, not a fresh read.
func (s *Store) State() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	backendType := "unknown"
	var backendState any
	if s.backend != nil {
		backendType = "backend"
		// Try to get component type if backend implements introspection.Component
		if comp, ok := s.backend.(introspection.Component); ok {
			backendType = comp.ComponentType()
		}
		if intro, ok := s.backend.(introspection.Introspectable); ok {
			backendState = intro.State()
		}
	}

	notes := 0
	for _, nb := range s.doc.Notebooks {
		notes += len(nb.Notes)
	}

	return StoreState{
		Key:         s.config.Key,
		BackendType: backendType,
		ReadOnly:    s.config.ReadOnly,
		Notebooks:   len(s.doc.Notebooks),
		Notes:       notes,
		Writes:      s.writes,
		LastWrite:   s.lastWrite,
		Backend:     backendState,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
