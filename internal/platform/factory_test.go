package platform_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notekeeper/internal/platform"
	"github.com/aretw0/notekeeper/pkg/adapters/memory"
	"github.com/aretw0/notekeeper/pkg/core"
)

func TestNew_FS(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")

	store, err := platform.New(ctx, dir, platform.WithAutoInit(true))
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "notekeeperDB.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"notebooks":[]}`, string(raw))

	nb, err := store.CreateNotebook(ctx, "Work")
	require.NoError(t, err)

	// A fresh store over the same directory sees the notebook.
	reopened, err := platform.New(ctx, dir, platform.WithMustExist(true))
	require.NoError(t, err)
	got, err := reopened.GetNotebook(ctx, nb.ID)
	require.NoError(t, err)
	assert.Equal(t, "Work", got.Name)
}

func TestNew_FSMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	_, err := platform.New(context.Background(), dir, platform.WithMustExist(true))
	assert.Error(t, err)
}

func TestNew_SQLite(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")

	store, err := platform.New(ctx, dir, platform.WithAdapter("sqlite"), platform.WithAutoInit(true))
	require.NoError(t, err)
	defer platform.Close(store)

	_, err = store.CreateNotebook(ctx, "Work")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, platform.SQLiteFile))
}

func TestNew_InjectedBackend(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewBackend()
	clock := func() time.Time { return time.UnixMilli(42) }

	store, err := platform.New(ctx, "",
		platform.WithBackend(backend),
		platform.WithStorageKey("custom"),
		platform.WithClock(clock),
	)
	require.NoError(t, err)

	nb, err := store.CreateNotebook(ctx, "Work")
	require.NoError(t, err)
	assert.Equal(t, "42", nb.ID)

	_, err = backend.Get(ctx, "custom")
	assert.NoError(t, err)
	_, err = backend.Get(ctx, core.DefaultStorageKey)
	assert.ErrorIs(t, err, core.ErrKeyNotFound)
}

func TestNew_UnknownAdapter(t *testing.T) {
	_, err := platform.New(context.Background(), "", platform.WithAdapter("s3"))
	assert.EqualError(t, err, "unknown adapter: s3")
}

func TestThemes_ShareBackend(t *testing.T) {
	ctx := context.Background()
	store, err := platform.New(ctx, "", platform.WithAdapter("memory"), platform.WithIDGenerator(core.UUIDs()))
	require.NoError(t, err)

	themes := platform.Themes(store)
	require.NoError(t, themes.Set(ctx, core.ThemeDark))

	raw, err := store.Backend().Get(ctx, core.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", string(raw))
}
