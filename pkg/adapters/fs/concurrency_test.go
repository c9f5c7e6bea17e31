package fs_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notekeeper/pkg/adapters/fs"
	"github.com/aretw0/notekeeper/pkg/core"
)

// TestStoreConcurrency verifies that goroutines sharing one Store never lose a write.
func TestStoreConcurrency(t *testing.T) {
	b, _ := setupBackend(t)
	ctx := context.Background()

	store := core.NewStore(b, core.StoreConfig{IDs: core.UUIDs()})
	require.NoError(t, store.Initialize(ctx))

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := store.CreateNotebook(ctx, fmt.Sprintf("nb-%d", i)); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("create failed: %v", err)
	}

	notebooks, err := store.ListNotebooks(ctx)
	require.NoError(t, err)
	assert.Len(t, notebooks, workers)
}

// TestStoreConsistency verifies that a second Store over the same directory sees prior writes.
func TestStoreConsistency(t *testing.T) {
	b, path := setupBackend(t)
	ctx := context.Background()

	first := core.NewStore(b, core.StoreConfig{})
	require.NoError(t, first.Initialize(ctx))
	nb, err := first.CreateNotebook(ctx, "Work")
	require.NoError(t, err)

	other := fs.NewBackend(fs.Config{Path: path})
	second := core.NewStore(other, core.StoreConfig{})
	_, err = second.CreateNote(ctx, nb.ID, core.NoteInput{Title: "from second"})
	require.NoError(t, err)

	notes, err := first.ListNotes(ctx, nb.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "from second", notes[0].Title)
}
