package core

import "context"

// Backend is the persistence strategy injected into a Store.
// It mirrors browser local storage: a flat namespace of keys holding opaque values.
// Adhering to this interface keeps the Store independent of the underlying
// storage mechanism (memory, filesystem, SQLite, Redis).
type Backend interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Initializer is implemented by backends that need setup (mkdir, schema) before use.
type Initializer interface {
	Initialize(ctx context.Context) error
}

// Watchable is implemented by backends that can report changes made by other writers.
type Watchable interface {
	// Watch emits an Event for every change to a key matching pattern.
	// The channel is closed once ctx is cancelled.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

// Closer is implemented by backends holding connections.
type Closer interface {
	Close() error
}
