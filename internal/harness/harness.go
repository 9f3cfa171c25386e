package harness

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/roach88/ecoquery/internal/cli"
)

// DefaultQueryID is the query ID used when a scenario does not set one.
const DefaultQueryID = "test-query-default"

// Run executes a scenario and returns the result.
//
// The command runs in-process on a fresh root command with a fixed query
// ID, so repeated runs produce identical output. Errors that the CLI did not
// report itself are written to stderr the way the ecoquery binary does.
func Run(scenario *Scenario) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is nil")
	}

	queryID := scenario.QueryID
	if queryID == "" {
		queryID = DefaultQueryID
	}

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	opts := &cli.RootOptions{QueryIDs: cli.NewFixedGenerator(queryID)}
	cmd := cli.NewRootCommandWithOptions(opts)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(commandLine(scenario))

	err := cmd.Execute()
	var exitErr *cli.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	result := NewResult()
	result.ExitCode = cli.GetExitCode(err)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}

// commandLine returns the scenario args plus the data directory flag.
func commandLine(s *Scenario) []string {
	args := append([]string(nil), s.Args...)
	if s.DataDir != "" {
		args = append(args, "--data-dir", s.DataDir)
	}
	return args
}
