package testrun

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogStore_MissingFileIsEmpty(t *testing.T) {
	s := NewLogStore(filepath.Join(t.TempDir(), "test-logs.json"), 100)
	logs, err := s.List()
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
}

func TestLogStore_NewestFirstAndCapped(t *testing.T) {
	s := NewLogStore(filepath.Join(t.TempDir(), "test-logs.json"), 3)

	for i := 1; i <= 5; i++ {
		require.NoError(t, s.Append(LogEntry{Passed: i, FailedTests: []string{}}))
	}

	logs, err := s.List()
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, 5, logs[0].Passed)
	assert.Equal(t, 4, logs[1].Passed)
	assert.Equal(t, 3, logs[2].Passed)
}

func TestLogStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test-logs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewLogStore(path, 100)
	_, err := s.List()
	assert.ErrorContains(t, err, "error reading test logs")
	assert.Error(t, s.Append(LogEntry{}))
}
