// Package testrun re-runs the handler test suite with deliberately broken
// assertions and keeps a capped log of the results. It is a demo and
// diagnostic tool only; scenarios work by literal text substitution in test
// sources and silently stop matching if those sources change.
package testrun

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"
	"time"

	"clinic-api/internal/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Result is the summary returned by POST /api/run-tests.
type Result struct {
	Success     bool    `json:"success"`
	TestsPassed bool    `json:"testsPassed"`
	TotalTests  int     `json:"totalTests"`
	Passed      int     `json:"passed"`
	Failed      int     `json:"failed"`
	Suites      int     `json:"suites"`
	Output      string  `json:"output"`
	Error       *string `json:"error"`
}

type Options struct {
	Dir      string
	Command  []string
	Timeout  time.Duration // 0 disables
	Catalog  Catalog
	Parser   Parser
	Executor Executor
	Logs     *LogStore
	Logger   *zap.Logger
}

// Service runs one test invocation at a time so scenarios never patch the
// same files concurrently.
type Service struct {
	mu       sync.Mutex
	dir      string
	command  []string
	timeout  time.Duration
	injector *Injector
	parser   Parser
	exec     Executor
	logs     *LogStore
	log      *zap.Logger
	now      func() time.Time
}

func New(opts Options) *Service {
	return &Service{
		dir:      opts.Dir,
		command:  opts.Command,
		timeout:  opts.Timeout,
		injector: NewInjector(opts.Dir, opts.Catalog, opts.Logger),
		parser:   opts.Parser,
		exec:     opts.Executor,
		logs:     opts.Logs,
		log:      opts.Logger,
		now:      time.Now,
	}
}

// FromConfig builds a Service that shells out to the configured command and
// uses the default scenario catalog.
func FromConfig(cfg config.TestRunnerConfig, log *zap.Logger) (*Service, error) {
	parser, err := ParserByName(cfg.Parser)
	if err != nil {
		return nil, err
	}
	return New(Options{
		Dir:      cfg.Dir,
		Command:  cfg.Command,
		Timeout:  cfg.Timeout,
		Catalog:  DefaultCatalog(),
		Parser:   parser,
		Executor: CommandExecutor{Log: log},
		Logs:     NewLogStore(cfg.LogFile, cfg.MaxLogs),
		Logger:   log,
	}), nil
}

// Run applies the failTests scenarios, runs the suite, restores the test
// files and records the outcome. Failing tests are a normal result; an error
// means the runner itself could not be executed.
func (s *Service) Run(ctx context.Context, failTests []string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if failTests == nil {
		failTests = []string{}
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	output, applied, err := s.runPatched(ctx, failTests)
	if err != nil {
		return Result{}, err
	}

	counts := s.parser.Parse(output)
	now := s.now()
	entry := LogEntry{
		ID:          uuid.NewString(),
		Timestamp:   now.UTC(),
		Date:        now.Format("2/1/2006, 15:04:05"),
		Passed:      counts.Passed,
		Failed:      counts.Failed,
		Total:       counts.Total(),
		FailedTests: failTests,
		Applied:     applied,
		Output:      output,
	}
	if err := s.logs.Append(entry); err != nil {
		s.log.Error("Error saving test log", zap.Error(err))
	}

	if output == "" {
		output = "No output received"
	}
	s.log.Info("Test run finished",
		zap.Int("passed", counts.Passed),
		zap.Int("failed", counts.Failed),
		zap.Strings("fail_tests", failTests))

	return Result{
		Success:     true,
		TestsPassed: counts.Failed == 0,
		TotalTests:  counts.Total(),
		Passed:      counts.Passed,
		Failed:      counts.Failed,
		Suites:      counts.Suites,
		Output:      output,
	}, nil
}

// runPatched runs the command with the failTests scenarios in place and
// returns its output together with the scenarios that were actually applied.
func (s *Service) runPatched(ctx context.Context, failTests []string) (string, []string, error) {
	if len(s.command) == 0 {
		return "", nil, errors.New("no test command configured")
	}
	applied, restore := s.injector.Apply(failTests)
	if applied == nil {
		applied = []string{}
	}
	defer func() {
		if err := restore(); err != nil {
			s.log.Error("Test files were not fully restored", zap.Error(err))
		}
	}()
	if len(applied) > 0 {
		s.log.Info("Injected test failures", zap.Strings("scenarios", applied))
	}

	output, err := s.exec.Execute(ctx, s.dir, s.command[0], s.command[1:]...)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return output, nil, fmt.Errorf("test run aborted: %w", ctxErr)
	}
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return output, nil, fmt.Errorf("run %s: %w", s.command[0], err)
	}
	return output, applied, nil
}

// Logs returns the recorded runs, newest first.
func (s *Service) Logs() ([]LogEntry, error) {
	return s.logs.List()
}

func (s *Service) Stats() (Stats, error) {
	logs, err := s.logs.List()
	if err != nil {
		return Stats{}, err
	}
	return Summarize(logs), nil
}
