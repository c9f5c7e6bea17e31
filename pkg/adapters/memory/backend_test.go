package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notekeeper/pkg/adapters/memory"
	"github.com/aretw0/notekeeper/pkg/core"
	"github.com/aretw0/notekeeper/pkg/core/coretest"
)

func TestBackend(t *testing.T) {
	ctx := context.Background()
	b := memory.NewBackend()

	_, err := b.Get(ctx, "missing")
	assert.ErrorIs(t, err, core.ErrKeyNotFound)

	value := []byte("light")
	require.NoError(t, b.Set(ctx, "theme", value))
	value[0] = 'X' // caller mutation must not leak into the store

	got, err := b.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", string(got))
	assert.Equal(t, 1, b.Len())

	require.NoError(t, b.Delete(ctx, "theme"))
	require.NoError(t, b.Delete(ctx, "theme"), "deleting a missing key is not an error")
	_, err = b.Get(ctx, "theme")
	assert.ErrorIs(t, err, core.ErrKeyNotFound)
}

func TestBackend_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := memory.NewBackend()
	assert.ErrorIs(t, b.Set(ctx, "k", []byte("v")), context.Canceled)
}

func TestBackend_Contract(t *testing.T) {
	coretest.RunBackendContract(t, func(t *testing.T) core.Backend {
		return memory.NewBackend()
	})
}
