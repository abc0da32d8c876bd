package testrun

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Executor runs a command in dir and returns its combined stdout and stderr.
type Executor interface {
	Execute(ctx context.Context, dir, name string, args ...string) (string, error)
}

// waitDelay bounds how long Execute waits for output after the command was
// killed, in case a grandchild still holds the pipe.
const waitDelay = 2 * time.Second

// CommandExecutor runs real subprocesses. On cancellation the whole process
// group is killed, so the test binaries started by "go test" die with it.
type CommandExecutor struct {
	Log *zap.Logger
}

func (e CommandExecutor) Execute(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay
	killProcessGroup(cmd)
	e.Log.Info("Executing test command", zap.String("dir", dir), zap.String("command", name+" "+strings.Join(args, " ")))

	output, err := cmd.CombinedOutput()
	if err != nil {
		e.Log.Info("Test command exited with error", zap.Error(err), zap.Int("output_bytes", len(output)))
		return string(output), err
	}
	e.Log.Info("Test command finished", zap.Int("output_bytes", len(output)))
	return string(output), nil
}
