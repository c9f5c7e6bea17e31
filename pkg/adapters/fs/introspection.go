package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// BackendState exposes internal state for observability.
type BackendState struct {
	Path          string     `json:"path"`
	Initialized   bool       `json:"initialized"`
	ReadOnly      bool       `json:"read_only"`
	ActiveWatches int        `json:"active_watches"`
	Writes        int        `json:"writes"`
	LastWrite     *time.Time `json:"last_write,omitempty"`
}

// State implements introspection.Introspectable.
func (b *Backend) State() any {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return BackendState{
		Path:          b.Path,
		Initialized:   b.initialized,
		ReadOnly:      b.config.ReadOnly,
		ActiveWatches: b.watchers,
		Writes:        b.writes,
		LastWrite:     b.lastWrite,
	}
}

// ComponentType implements introspection.Component.
func (b *Backend) ComponentType() string {
	return "fs"
}

var _ introspection.Introspectable = (*Backend)(nil)
var _ introspection.Component = (*Backend)(nil)

func (b *Backend) addWatcher(delta int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.watchers += delta
}
