package platform

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"NOTEKEEPER_ADAPTER", "NOTEKEEPER_DIR", "NOTEKEEPER_REDIS_ADDR", "NOTEKEEPER_READ_ONLY"} {
			t.Setenv(key, "") // restores the original value after the test
			require.NoError(t, os.Unsetenv(key))
		}

		cfg, err := ParseEnv()
		require.NoError(t, err)
		assert.Equal(t, "fs", cfg.Adapter)
		assert.Equal(t, "localhost:6379", cfg.RedisAddr)
		assert.False(t, cfg.ReadOnly)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("NOTEKEEPER_DIR", "/tmp/nk")
		t.Setenv("NOTEKEEPER_ADAPTER", "sqlite")
		t.Setenv("NOTEKEEPER_READ_ONLY", "true")
		t.Setenv("NOTEKEEPER_REDIS_DB", "3")

		cfg, err := ParseEnv()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/nk", cfg.Dir)
		assert.Equal(t, "sqlite", cfg.Adapter)
		assert.True(t, cfg.ReadOnly)
		assert.Equal(t, 3, cfg.RedisDB)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Setenv("NOTEKEEPER_REDIS_DB", "three")

		_, err := ParseEnv()
		assert.Error(t, err)
	})
}
