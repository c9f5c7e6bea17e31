package platform

import (
	"log/slog"

	"github.com/aretw0/notekeeper/pkg/core"
)

// options holds the internal configuration for a notekeeper Store.
type options struct {
	backend core.Backend
	logger  *slog.Logger
	adapter string
	key     string
	ids     core.IDGenerator
	clock   core.Clock
	config  map[string]interface{}
}

// Option defines a functional option for configuring notekeeper.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter: "fs",
		key:     core.DefaultStorageKey,
		config:  make(map[string]interface{}),
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// WithAutoInit creates the data directory when it is missing.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.config["auto_init"] = auto
	}
}

// WithMustExist ensures the data directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithLogger sets the logger for the store and its backend.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithBackend injects a custom persistence strategy (e.g. memory, mock).
// If provided, the adapter setting is ignored.
func WithBackend(b core.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithAdapter selects the storage adapter by name: "fs" (default), "memory",
// "sqlite" or "redis".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithStorageKey overrides the backend key of the document.
func WithStorageKey(key string) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithIDGenerator replaces the timestamp ID generator.
func WithIDGenerator(ids core.IDGenerator) Option {
	return func(o *options) {
		o.ids = ids
	}
}

// WithClock replaces time.Now for IDs and posting times.
func WithClock(clock core.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithReadOnly enables read-only mode.
// In this mode:
// 1. Mutations return ErrReadOnly.
// 2. Initialization (mkdir, empty document) is skipped.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.config["read_only"] = enabled
	}
}

// WithWatcherErrorHandler registers a callback for errors raised inside a Watch loop,
// which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.config["watcher_error_handler"] = fn
	}
}

// WithRedisAuth sets the password and database index of the redis adapter.
func WithRedisAuth(password string, db int) Option {
	return func(o *options) {
		o.config["redis_password"] = password
		o.config["redis_db"] = db
	}
}

func (o *options) readOnly() bool {
	v, _ := o.config["read_only"].(bool)
	return v
}
