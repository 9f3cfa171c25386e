package harness

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// OutputSnapshot captures the observable outcome of a scenario execution.
// The data directory is left out so snapshots do not depend on where the
// datasets live.
type OutputSnapshot struct {
	ScenarioName string
	Args         []string
	ExitCode     int
	Stdout       string
	Stderr       string
}

// Bytes renders the snapshot in its golden file form:
//
//	# <name>
//	$ ecoquery <args>
//	exit: <code>
//	-- stdout --
//	<stdout>-- stderr --
//	<stderr>
func (s OutputSnapshot) Bytes() []byte {
	var buf strings.Builder
	fmt.Fprintf(&buf, "# %s\n", s.ScenarioName)
	fmt.Fprintf(&buf, "$ ecoquery %s\n", shellJoin(s.Args))
	fmt.Fprintf(&buf, "exit: %d\n", s.ExitCode)
	buf.WriteString("-- stdout --\n")
	buf.WriteString(s.Stdout)
	buf.WriteString("-- stderr --\n")
	buf.WriteString(s.Stderr)
	return []byte(buf.String())
}

// shellJoin joins args with spaces, quoting any that contain whitespace or
// are empty.
func shellJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n'\"") {
			quoted[i] = strconv.Quote(a)
		} else {
			quoted[i] = a
		}
	}
	return strings.Join(quoted, " ")
}

// RunWithGolden executes a scenario and compares its output against a golden
// file stored in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if output doesn't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	AssertGolden(t, scenario.Name, scenario.Args, result)
	return result, nil
}

// AssertGolden compares an existing result against a golden file without
// re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, args []string, result *Result) {
	t.Helper()

	snapshot := OutputSnapshot{
		ScenarioName: scenarioName,
		Args:         args,
		ExitCode:     result.ExitCode,
		Stdout:       result.Stdout,
		Stderr:       result.Stderr,
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, snapshot.Bytes())
}
