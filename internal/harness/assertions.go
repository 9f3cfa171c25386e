package harness

import (
	"fmt"
	"strings"
)

// AssertionError is returned when an assertion fails.
// It includes the captured output to help debug the failure.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
	Stdout   string
	Stderr   string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nstdout:\n%s", indent(e.Stdout))
	fmt.Fprintf(&buf, "stderr:\n%s", indent(e.Stderr))

	return buf.String()
}

func indent(s string) string {
	if s == "" {
		return "  (empty)\n"
	}
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	return "  " + strings.Join(lines, "\n  ") + "\n"
}

// EvaluateAssertions checks every assertion against result and returns the
// failure messages, in assertion order.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var failures []string
	for i, a := range assertions {
		if err := evaluateAssertion(result, a); err != nil {
			failures = append(failures, fmt.Sprintf("assertion %d: %v", i, err))
		}
	}
	return failures
}

func evaluateAssertion(result *Result, a Assertion) error {
	switch a.Type {
	case AssertExitCode:
		return assertExitCode(result, a)
	case AssertStdoutContains:
		return assertContains(result, a, "stdout", result.Stdout)
	case AssertStderrContains:
		return assertContains(result, a, "stderr", result.Stderr)
	case AssertStdoutEquals:
		return assertStdoutEquals(result, a)
	case AssertStdoutEmpty:
		return assertStdoutEmpty(result)
	default:
		return fmt.Errorf("unknown assertion type: %s", a.Type)
	}
}

// assertExitCode checks the exit code matches exactly.
func assertExitCode(result *Result, a Assertion) error {
	if result.ExitCode == a.Code {
		return nil
	}
	return &AssertionError{
		Type:     AssertExitCode,
		Expected: fmt.Sprintf("exit code %d", a.Code),
		Actual:   fmt.Sprintf("exit code %d", result.ExitCode),
		Stdout:   result.Stdout,
		Stderr:   result.Stderr,
	}
}

// assertContains checks that output contains the assertion text.
func assertContains(result *Result, a Assertion, stream, output string) error {
	if strings.Contains(output, a.Text) {
		return nil
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: fmt.Sprintf("%s containing %q", stream, a.Text),
		Actual:   "not found",
		Stdout:   result.Stdout,
		Stderr:   result.Stderr,
	}
}

func assertStdoutEquals(result *Result, a Assertion) error {
	if result.Stdout == a.Text {
		return nil
	}
	return &AssertionError{
		Type:     AssertStdoutEquals,
		Expected: fmt.Sprintf("stdout %q", a.Text),
		Actual:   fmt.Sprintf("stdout %q", result.Stdout),
		Stdout:   result.Stdout,
		Stderr:   result.Stderr,
	}
}

func assertStdoutEmpty(result *Result) error {
	if result.Stdout == "" {
		return nil
	}
	return &AssertionError{
		Type:     AssertStdoutEmpty,
		Expected: "empty stdout",
		Actual:   fmt.Sprintf("%d bytes", len(result.Stdout)),
		Stdout:   result.Stdout,
		Stderr:   result.Stderr,
	}
}
