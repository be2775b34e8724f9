package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file with every section
		path := writeConfig(t, `
log-level: debug
http-port: "8080"
storage: redis
session-ttl: 30m
redis:
  host: cache
  port: "6380"
  db: 2
match:
  win-threshold: 5
`)

		// When: loading it
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: the values are taken from the file
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, StorageRedis, conf.Storage)
		assert.Equal(t, 30*time.Minute, conf.SessionTTL)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 2, conf.Redis.DB)
		assert.Equal(t, 5, conf.Match.WinThreshold)
	})

	t.Run("Defaults fill missing keys", func(t *testing.T) {
		path := writeConfig(t, "log-level: info\n")

		conf, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, StorageMemory, conf.Storage)
		assert.Equal(t, 24*time.Hour, conf.SessionTTL)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 3, conf.Match.WinThreshold)
	})

	t.Run("Falls back to the environment without a file", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "7070")
		t.Setenv("MATCH_WIN_THRESHOLD", "4")

		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.NoError(t, err)

		assert.Equal(t, "7070", conf.HTTPPort)
		assert.Equal(t, 4, conf.Match.WinThreshold)
	})

	t.Run("Rejects an unknown storage", func(t *testing.T) {
		path := writeConfig(t, "storage: postgres\n")

		_, err := Load(path)

		assert.ErrorIs(t, err, ErrUnknownStorage)
	})
}

func TestMustLoad_Panics(t *testing.T) {
	path := writeConfig(t, "storage: postgres\n")

	assert.Panics(t, func() { MustLoad(path) })
}
