package main

import (
	"fmt"
	"slices"
	"strings"

	"clinic-api/internal/testrun"

	"github.com/spf13/cobra"
)

var (
	failTests  []string
	showOutput bool
)

var runTestsCmd = &cobra.Command{
	Use:   "run-tests",
	Short: "Run the handler test suite with optional injected failures",
	Long: `Runs the configured test command once, the same way POST /api/run-tests
does, and records the result in the test log file.

Example:
  clinic-api run-tests --fail doctors-create --fail specialties-duplicate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := testrun.FromConfig(cfg.TestRunner, logger)
		if err != nil {
			return err
		}
		res, err := svc.Run(cmd.Context(), failTests)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if showOutput {
			fmt.Fprintln(out, res.Output)
		}
		fmt.Fprintf(out, "passed: %d  failed: %d  total: %d  suites: %d\n", res.Passed, res.Failed, res.TotalTests, res.Suites)
		if !res.TestsPassed {
			return fmt.Errorf("%d test(s) failed", res.Failed)
		}
		return nil
	},
}

func init() {
	runTestsCmd.Flags().StringSliceVar(&failTests, "fail", nil, "scenario to break (repeatable): "+scenarioKeys())
	runTestsCmd.Flags().BoolVar(&showOutput, "output", false, "print the raw runner output")
}

func scenarioKeys() string {
	catalog := testrun.DefaultCatalog()
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return strings.Join(keys, ", ")
}
