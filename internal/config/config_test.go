package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults when the file is missing", func(t *testing.T) {
		// When: loading a config that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "9091", conf.SocketPort)
		assert.Equal(t, StorageBadger, conf.Storage)
		assert.Equal(t, 24*time.Hour, conf.SessionTTL)
		assert.False(t, conf.StrictMoves)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nstorage: redis\nsession-ttl: 30m\nstrict-moves: true\nredis:\n  host: cache\n  port: \"6380\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: values from the file are used
		require.NoError(t, err)
		assert.Equal(t, slog.LevelDebug, conf.Level())
		assert.Equal(t, StorageRedis, conf.Storage)
		assert.Equal(t, 30*time.Minute, conf.SessionTTL)
		assert.True(t, conf.StrictMoves)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "8000")

		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, "8000", conf.HTTPPort)
	})

	t.Run("Error on unknown storage", func(t *testing.T) {
		t.Setenv("STORAGE", "mysql")

		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		assert.ErrorIs(t, err, ErrUnknownStorage)
	})
}
