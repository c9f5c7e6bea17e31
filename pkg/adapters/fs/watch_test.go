package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/aretw0/notekeeper/pkg/adapters/fs"
	"github.com/aretw0/notekeeper/pkg/core"
)

// waitFor returns the first event for key, failing after timeout.
func waitFor(t *testing.T, events <-chan core.Event, key string, timeout time.Duration) core.Event {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case e, ok := <-events:
			require.True(t, ok, "events channel closed early")
			if e.Key == key {
				return e
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event on %s", key)
		}
	}
}

func TestWatch(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	b, path := setupBackend(t)
	require.NoError(t, b.Initialize(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	events, err := b.Watch(ctx, "notekeeper*")
	require.NoError(t, err)

	// A second process writing through its own backend.
	other := fs.NewBackend(fs.Config{Path: path})
	require.NoError(t, other.Set(context.Background(), core.ThemeKey, []byte("dark")))
	require.NoError(t, other.Set(context.Background(), core.DefaultStorageKey, []byte(`{"notebooks":[]}`)))

	e := waitFor(t, events, core.DefaultStorageKey, 2*time.Second)
	assert.NotEqual(t, core.EventDelete, e.Type)

	// Foreign files never surface.
	require.NoError(t, os.WriteFile(filepath.Join(path, "notes.txt"), []byte("x"), 0644))

	require.NoError(t, other.Delete(context.Background(), core.DefaultStorageKey))
	e = waitFor(t, events, core.DefaultStorageKey, 2*time.Second)
	assert.Equal(t, core.EventDelete, e.Type)

	state := b.State().(fs.BackendState)
	assert.Equal(t, 1, state.ActiveWatches)

	cancel()
	for range events {
	}
}

func TestWatch_InvalidPattern(t *testing.T) {
	b, _ := setupBackend(t)
	require.NoError(t, b.Initialize(context.Background()))

	_, err := b.Watch(context.Background(), "[")
	assert.Error(t, err)
}
