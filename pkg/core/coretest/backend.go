// Package coretest holds shared tests for core.Backend implementations.
package coretest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notekeeper/pkg/core"
)

// RunBackendContract checks the Get/Set/Delete behaviour every backend shares.
// newBackend must return a fresh, initialized, writable backend on each call.
func RunBackendContract(t *testing.T, newBackend func(t *testing.T) core.Backend) {
	t.Helper()

	t.Run("Missing Key", func(t *testing.T) {
		b := newBackend(t)
		_, err := b.Get(context.Background(), core.ThemeKey)
		assert.ErrorIs(t, err, core.ErrKeyNotFound)
	})

	t.Run("Set Then Get", func(t *testing.T) {
		ctx := context.Background()
		b := newBackend(t)

		require.NoError(t, b.Set(ctx, core.DefaultStorageKey, []byte(`{"notebooks":[]}`)))
		got, err := b.Get(ctx, core.DefaultStorageKey)
		require.NoError(t, err)
		assert.Equal(t, `{"notebooks":[]}`, string(got))
	})

	t.Run("Overwrite", func(t *testing.T) {
		ctx := context.Background()
		b := newBackend(t)

		require.NoError(t, b.Set(ctx, core.ThemeKey, []byte("light")))
		require.NoError(t, b.Set(ctx, core.ThemeKey, []byte("dark")))
		got, err := b.Get(ctx, core.ThemeKey)
		require.NoError(t, err)
		assert.Equal(t, "dark", string(got))
	})

	t.Run("Values Are Copies", func(t *testing.T) {
		ctx := context.Background()
		b := newBackend(t)

		value := []byte("light")
		require.NoError(t, b.Set(ctx, core.ThemeKey, value))
		value[0] = 'X'

		got, err := b.Get(ctx, core.ThemeKey)
		require.NoError(t, err)
		assert.Equal(t, "light", string(got))
		got[0] = 'Y'

		again, err := b.Get(ctx, core.ThemeKey)
		require.NoError(t, err)
		assert.Equal(t, "light", string(again))
	})

	t.Run("Keys Are Independent", func(t *testing.T) {
		ctx := context.Background()
		b := newBackend(t)

		require.NoError(t, b.Set(ctx, core.ThemeKey, []byte("dark")))
		require.NoError(t, b.Set(ctx, core.DefaultStorageKey, []byte(`{"notebooks":[]}`)))
		require.NoError(t, b.Delete(ctx, core.ThemeKey))

		_, err := b.Get(ctx, core.ThemeKey)
		assert.ErrorIs(t, err, core.ErrKeyNotFound)
		_, err = b.Get(ctx, core.DefaultStorageKey)
		assert.NoError(t, err)
	})

	t.Run("Delete Missing Key", func(t *testing.T) {
		b := newBackend(t)
		assert.NoError(t, b.Delete(context.Background(), core.ThemeKey))
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		b := newBackend(t)
		require.NoError(t, b.Set(context.Background(), core.ThemeKey, []byte("dark")))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := b.Get(ctx, core.ThemeKey)
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, b.Set(ctx, core.ThemeKey, []byte("light")), context.Canceled)
		assert.ErrorIs(t, b.Delete(ctx, core.ThemeKey), context.Canceled)

		got, err := b.Get(context.Background(), core.ThemeKey)
		require.NoError(t, err)
		assert.Equal(t, "dark", string(got), "cancelled calls change nothing")
	})
}
