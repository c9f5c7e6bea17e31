package notekeeper

import (
	"context"
	"log/slog"

	"github.com/aretw0/notekeeper/internal/platform"
	"github.com/aretw0/notekeeper/pkg/core"
)

// Version exposes the version of the library.
const Version = "0.1.0"

// --- Types ---

// Store is a public alias for the notebook repository.
type Store = core.Store

// ThemeStore is a public alias for the theme persistence.
type ThemeStore = core.ThemeStore

// --- Configuration ---

// Option defines a functional option for configuring notekeeper.
type Option = platform.Option

// WithAutoInit creates the data directory when it is missing.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist ensures the data directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithBackend allows injecting a custom persistence strategy.
func WithBackend(b core.Backend) Option {
	return platform.WithBackend(b)
}

// WithAdapter selects the storage adapter by name ("fs", "memory", "sqlite", "redis").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithStorageKey overrides the key the document is stored under.
func WithStorageKey(key string) Option {
	return platform.WithStorageKey(key)
}

// WithIDGenerator replaces the timestamp ID generator (e.g. core.UUIDs()).
func WithIDGenerator(ids core.IDGenerator) Option {
	return platform.WithIDGenerator(ids)
}

// WithClock replaces time.Now.
func WithClock(clock core.Clock) Option {
	return platform.WithClock(clock)
}

// WithReadOnly rejects every mutation with core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithWatcherErrorHandler receives errors raised while watching.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// WithRedisAuth configures the redis adapter credentials.
func WithRedisAuth(password string, db int) Option {
	return platform.WithRedisAuth(password, db)
}

// --- Factory ---

// New creates a Store and ensures the document exists.
func New(ctx context.Context, uri string, opts ...Option) (*Store, error) {
	return platform.New(ctx, uri, opts...)
}

// Init builds and initializes a backend without wrapping it in a Store.
func Init(ctx context.Context, uri string, opts ...Option) (core.Backend, error) {
	return platform.Init(ctx, uri, opts...)
}

// Themes returns the theme store sharing the backend of store.
func Themes(store *Store) *ThemeStore {
	return platform.Themes(store)
}

// Close releases connections held by the backend of store.
func Close(store *Store) error {
	return platform.Close(store)
}

// Watch streams key changes when the backend supports it.
func Watch(ctx context.Context, store *Store, pattern string) (<-chan core.Event, error) {
	w, ok := store.Backend().(core.Watchable)
	if !ok {
		return nil, ErrWatchUnsupported
	}
	return w.Watch(ctx, pattern)
}

// --- Paths ---

// FindRoot recursively looks upwards for a directory holding notekeeper data.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}

// ResolveDataDir picks the data directory for a CLI invocation.
func ResolveDataDir(explicit, cwd string) (string, error) {
	return platform.ResolveDataDir(explicit, cwd)
}
