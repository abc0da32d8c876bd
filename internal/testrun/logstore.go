package testrun

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogEntry records one invocation of the test runner.
type LogEntry struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Date        string    `json:"date"`
	Passed      int       `json:"passed"`
	Failed      int       `json:"failed"`
	Total       int       `json:"total"`
	FailedTests []string  `json:"failedTests"`
	Applied     []string  `json:"appliedTests"` // scenarios that matched
	Output      string    `json:"output"`
}

// LogStore keeps the newest max entries in a JSON file, newest first.
type LogStore struct {
	mu   sync.Mutex
	path string
	max  int
}

func NewLogStore(path string, max int) *LogStore {
	return &LogStore{path: path, max: max}
}

// List returns the stored entries; a missing file is an empty log.
func (s *LogStore) List() ([]LogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Append puts entry at the front and drops entries beyond the cap.
func (s *LogStore) Append(entry LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logs, err := s.read()
	if err != nil {
		return err
	}
	logs = append([]LogEntry{entry}, logs...)
	if len(logs) > s.max {
		logs = logs[:s.max]
	}
	return s.write(logs)
}

func (s *LogStore) read() ([]LogEntry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []LogEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading test logs: %w", err)
	}

	var logs []LogEntry
	if err := json.Unmarshal(data, &logs); err != nil {
		return nil, fmt.Errorf("error reading test logs: %w", err)
	}
	if logs == nil {
		logs = []LogEntry{}
	}
	return logs, nil
}

// write replaces the file via rename so readers never see a partial log.
func (s *LogStore) write(logs []LogEntry) error {
	data, err := json.MarshalIndent(logs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode test logs: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".test-logs-*.json")
	if err != nil {
		return fmt.Errorf("save test logs: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("save test logs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save test logs: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("save test logs: %w", err)
	}
	return nil
}
