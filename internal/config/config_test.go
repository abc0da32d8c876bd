package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.ListenPort)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.Equal(t, "go", cfg.TestRunner.Parser)
	assert.Equal(t, 100, cfg.TestRunner.MaxLogs)
	assert.Equal(t, 5*time.Minute, cfg.TestRunner.Timeout)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clinic.yaml")
	content := `
listen_port: "9090"
store_driver: sqlite
sqlite_path: /tmp/clinic-test.db
test_runner:
  parser: jest
  command: ["npm", "test"]
  timeout: 30s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ListenPort)
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "/tmp/clinic-test.db", cfg.SQLitePath)
	assert.Equal(t, "jest", cfg.TestRunner.Parser)
	assert.Equal(t, []string{"npm", "test"}, cfg.TestRunner.Command)
	assert.Equal(t, 30*time.Second, cfg.TestRunner.Timeout)
	// untouched keys keep their defaults
	assert.Equal(t, "test-logs.json", cfg.TestRunner.LogFile)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clinic.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_port: \"9090\"\n"), 0o644))

	t.Setenv("LISTEN_PORT", "7000")
	t.Setenv("STORE_DRIVER", "POSTGRES")
	t.Setenv("TEST_RUNNER_COMMAND", "go test ./...")
	t.Setenv("TEST_RUN_TIMEOUT", "0s")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.ListenPort)
	assert.Equal(t, DriverPostgres, cfg.StoreDriver)
	assert.Equal(t, []string{"go", "test", "./..."}, cfg.TestRunner.Command)
	assert.Zero(t, cfg.TestRunner.Timeout)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "mongo")
		_, err := LoadConfig("")
		assert.ErrorContains(t, err, "unknown store driver")
	})

	t.Run("bad timeout", func(t *testing.T) {
		t.Setenv("TEST_RUN_TIMEOUT", "soon")
		_, err := LoadConfig("")
		assert.ErrorContains(t, err, "TEST_RUN_TIMEOUT")
	})
}
