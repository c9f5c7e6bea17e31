package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notekeeper/pkg/adapters/fs"
	"github.com/aretw0/notekeeper/pkg/core"
	"github.com/aretw0/notekeeper/pkg/core/coretest"
)

// setupBackend creates a backend rooted in a fresh temp directory.
// It returns the backend and its data path.
func setupBackend(t *testing.T, opts ...func(*fs.Config)) (*fs.Backend, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data")
	cfg := fs.Config{
		Path:     path,
		AutoInit: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return fs.NewBackend(cfg), path
}

func TestInitialize(t *testing.T) {
	t.Run("Creates Directory if Missing", func(t *testing.T) {
		b, path := setupBackend(t)

		require.NoError(t, b.Initialize(context.Background()))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("Fails if MustExist and Missing", func(t *testing.T) {
		b, _ := setupBackend(t, func(c *fs.Config) {
			c.MustExist = true
		})

		assert.Error(t, b.Initialize(context.Background()))
	})

	t.Run("Fails if Path is a File", func(t *testing.T) {
		b, path := setupBackend(t)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

		assert.Error(t, b.Initialize(context.Background()))
	})
}

func TestGetSetDelete(t *testing.T) {
	ctx := context.Background()
	b, path := setupBackend(t)
	require.NoError(t, b.Initialize(ctx))

	_, err := b.Get(ctx, core.DefaultStorageKey)
	assert.ErrorIs(t, err, core.ErrKeyNotFound)

	require.NoError(t, b.Set(ctx, core.DefaultStorageKey, []byte(`{"notebooks":[]}`)))

	raw, err := os.ReadFile(filepath.Join(path, "notekeeperDB.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"notebooks":[]}`, string(raw))

	got, err := b.Get(ctx, core.DefaultStorageKey)
	require.NoError(t, err)
	assert.Equal(t, raw, got)

	keys, err := b.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"notekeeperDB"}, keys)

	require.NoError(t, b.Delete(ctx, core.DefaultStorageKey))
	require.NoError(t, b.Delete(ctx, core.DefaultStorageKey))
	_, err = b.Get(ctx, core.DefaultStorageKey)
	assert.ErrorIs(t, err, core.ErrKeyNotFound)
}

func TestInvalidKeys(t *testing.T) {
	ctx := context.Background()
	b, _ := setupBackend(t)
	require.NoError(t, b.Initialize(ctx))

	for _, key := range []string{"", "..", "../escape", `a\b`} {
		assert.Error(t, b.Set(ctx, key, []byte("x")), "key %q", key)
	}
}

func TestReadOnly(t *testing.T) {
	ctx := context.Background()
	b, path := setupBackend(t)
	require.NoError(t, b.Initialize(ctx))
	require.NoError(t, b.Set(ctx, core.ThemeKey, []byte("dark")))

	ro := fs.NewBackend(fs.Config{Path: path, ReadOnly: true})
	require.NoError(t, ro.Initialize(ctx))

	got, err := ro.Get(ctx, core.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", string(got))

	assert.ErrorIs(t, ro.Set(ctx, core.ThemeKey, []byte("light")), core.ErrReadOnly)
	assert.ErrorIs(t, ro.Delete(ctx, core.ThemeKey), core.ErrReadOnly)

	state, ok := ro.State().(fs.BackendState)
	require.True(t, ok)
	assert.True(t, state.ReadOnly)
	assert.Equal(t, "fs", ro.ComponentType())
}

func TestBackendContract(t *testing.T) {
	coretest.RunBackendContract(t, func(t *testing.T) core.Backend {
		b, _ := setupBackend(t)
		require.NoError(t, b.Initialize(context.Background()))
		return b
	})
}
