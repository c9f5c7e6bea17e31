package platform

import (
	"context"

	"github.com/aretw0/notekeeper/pkg/core"
)

// New builds the backend, wraps it in a Store and writes the empty document
// on first use.
//
//	store, err := platform.New(ctx, "./data", platform.WithAutoInit(true))
func New(ctx context.Context, uri string, opts ...Option) (*core.Store, error) {
	o := applyOptions(opts)

	backend, err := initBackend(ctx, uri, o)
	if err != nil {
		return nil, err
	}

	store := core.NewStore(backend, core.StoreConfig{
		Key:      o.key,
		IDs:      o.ids,
		Clock:    o.clock,
		Logger:   o.logger,
		ReadOnly: o.readOnly(),
	})
	if err := store.Initialize(ctx); err != nil {
		if c, ok := backend.(core.Closer); ok {
			_ = c.Close()
		}
		return nil, err
	}

	return store, nil
}

// Themes returns the theme store sharing the backend of store.
func Themes(store *core.Store) *core.ThemeStore {
	return core.NewThemeStore(store.Backend(), store.ReadOnly())
}

// Close releases the backend of store when it holds connections.
func Close(store *core.Store) error {
	if c, ok := store.Backend().(core.Closer); ok {
		return c.Close()
	}
	return nil
}
