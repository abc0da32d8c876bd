package testrun

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleTest = `func TestCreate(t *testing.T) {
	assert.Equal(t, http.StatusCreated, created.Code)
}

func TestUpdate(t *testing.T) {
	assert.Equal(t, http.StatusOK, updated.Code)
}
`

// fakeExecutor records the test file as the "runner" saw it.
type fakeExecutor struct {
	file   string
	seen   string
	output string
	err    error
}

func (f *fakeExecutor) Execute(ctx context.Context, dir, name string, args ...string) (string, error) {
	data, err := os.ReadFile(f.file)
	if err != nil {
		return "", err
	}
	f.seen = string(data)
	return f.output, f.err
}

type fixture struct {
	dir  string
	file string
	exec *fakeExecutor
	svc  *Service
	logs *LogStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	file := filepath.Join(dir, "api_test.go")
	require.NoError(t, os.WriteFile(file, []byte(sampleTest), 0o644))

	fx := &fixture{
		dir:  dir,
		file: file,
		exec: &fakeExecutor{file: file},
		logs: NewLogStore(filepath.Join(dir, "test-logs.json"), 100),
	}
	fx.svc = New(Options{
		Dir:     dir,
		Command: []string{"go", "test", "./..."},
		Catalog: NewCatalog(
			Scenario{
				Key:     "create",
				File:    "api_test.go",
				Find:    "assert.Equal(t, http.StatusCreated, created.Code)",
				Replace: "assert.Equal(t, http.StatusTeapot, created.Code)",
			},
			Scenario{
				Key:     "update",
				File:    "api_test.go",
				Find:    "assert.Equal(t, http.StatusOK, updated.Code)",
				Replace: "assert.Equal(t, http.StatusNotFound, updated.Code)",
			},
			Scenario{Key: "stale", File: "api_test.go", Find: "this text is gone", Replace: "whatever"},
			Scenario{Key: "missing-file", File: "nope_test.go", Find: "x", Replace: "y"},
		),
		Parser:   GoParser{},
		Executor: fx.exec,
		Logs:     fx.logs,
		Logger:   zap.NewNop(),
	})
	fx.svc.now = func() time.Time { return time.Date(2026, 10, 15, 14, 3, 22, 0, time.UTC) }
	return fx
}

func (fx *fixture) content(t *testing.T) string {
	data, err := os.ReadFile(fx.file)
	require.NoError(t, err)
	return string(data)
}

func TestService_RunWithoutFailures(t *testing.T) {
	fx := newFixture(t)
	fx.exec.output = "--- PASS: TestCreate (0.00s)\n--- PASS: TestUpdate (0.00s)\nok  \tclinic\t0.01s\n"

	res, err := fx.svc.Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, Result{
		Success:     true,
		TestsPassed: true,
		TotalTests:  2,
		Passed:      2,
		Suites:      1,
		Output:      fx.exec.output,
	}, res)
	assert.Equal(t, sampleTest, fx.exec.seen)

	logs, err := fx.svc.Logs()
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.NotEmpty(t, logs[0].ID)
	assert.Equal(t, []string{}, logs[0].FailedTests)
	assert.Equal(t, []string{}, logs[0].Applied)
	assert.Equal(t, "15/10/2026, 14:03:22", logs[0].Date)
	assert.Equal(t, 2, logs[0].Total)
}

func TestService_InjectsAndRestores(t *testing.T) {
	fx := newFixture(t)
	fx.exec.output = "--- FAIL: TestCreate (0.00s)\n--- FAIL: TestUpdate (0.00s)\nFAIL\n"
	fx.exec.err = &exec.ExitError{}

	res, err := fx.svc.Run(context.Background(), []string{"create", "update", "stale", "missing-file", "unknown"})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.False(t, res.TestsPassed)
	assert.Equal(t, 2, res.Failed)

	// both scenarios were visible to the runner at once
	assert.Contains(t, fx.exec.seen, "http.StatusTeapot, created.Code")
	assert.Contains(t, fx.exec.seen, "http.StatusNotFound, updated.Code")
	// and the file is back to its exact original content
	assert.Equal(t, sampleTest, fx.content(t))

	logs, err := fx.svc.Logs()
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, []string{"create", "update", "stale", "missing-file", "unknown"}, logs[0].FailedTests)
	assert.Equal(t, []string{"create", "update"}, logs[0].Applied)
}

func TestService_RestoresWhenRunnerCannotStart(t *testing.T) {
	fx := newFixture(t)
	fx.exec.err = exec.ErrNotFound

	_, err := fx.svc.Run(context.Background(), []string{"create"})
	require.Error(t, err)
	assert.ErrorIs(t, err, exec.ErrNotFound)

	assert.Contains(t, fx.exec.seen, "http.StatusTeapot")
	assert.Equal(t, sampleTest, fx.content(t))

	logs, err := fx.svc.Logs()
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestService_EmptyOutput(t *testing.T) {
	fx := newFixture(t)

	res, err := fx.svc.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "No output received", res.Output)
	assert.Zero(t, res.TotalTests)
}

func TestService_CanceledContext(t *testing.T) {
	fx := newFixture(t)
	fx.exec.err = errors.New("signal: killed")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fx.svc.Run(ctx, []string{"update"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, sampleTest, fx.content(t))
}

func TestService_Stats(t *testing.T) {
	fx := newFixture(t)
	fx.exec.output = "--- PASS: TestCreate (0.00s)\n"
	_, err := fx.svc.Run(context.Background(), nil)
	require.NoError(t, err)

	st, err := fx.svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, Stats{Runs: 1, AveragePassed: 1}, st)
}

func TestCommandExecutor_RealProcess(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	out, err := CommandExecutor{Log: zap.NewNop()}.Execute(context.Background(), t.TempDir(),
		"sh", "-c", "echo '--- PASS: TestA (0.00s)'; echo '--- FAIL: TestB (0.00s)' >&2; exit 1")

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, Counts{Passed: 1, Failed: 1}, GoParser{}.Parse(out))
}

func TestService_NoCommand(t *testing.T) {
	svc := New(Options{
		Parser:   GoParser{},
		Executor: &fakeExecutor{},
		Logs:     NewLogStore(filepath.Join(t.TempDir(), "test-logs.json"), 10),
		Logger:   zap.NewNop(),
	})

	_, err := svc.Run(context.Background(), nil)
	assert.ErrorContains(t, err, "no test command configured")
}

func TestCommandExecutor_CancelKillsChildren(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := CommandExecutor{Log: zap.NewNop()}.Execute(ctx, t.TempDir(), "sh", "-c", "sleep 5; echo x")
	elapsed := time.Since(start)

	assert.Error(t, err)
	assert.Less(t, elapsed, 1500*time.Millisecond)
}

func TestService_TimeoutReleasesRunner(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	dir := t.TempDir()
	svc := New(Options{
		Dir:      dir,
		Command:  []string{"sh", "-c", "sleep 5; echo x"},
		Timeout:  200 * time.Millisecond,
		Parser:   GoParser{},
		Executor: CommandExecutor{Log: zap.NewNop()},
		Logs:     NewLogStore(filepath.Join(dir, "test-logs.json"), 10),
		Logger:   zap.NewNop(),
	})

	start := time.Now()
	_, err := svc.Run(context.Background(), nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// the lock is free again for the next run
	_, err = svc.Run(context.Background(), nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 3*time.Second)
}
