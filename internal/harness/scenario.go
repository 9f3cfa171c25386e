package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario defines a CLI conformance scenario: one command line and the
// assertions its outcome must satisfy.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// DataDir is passed as --data-dir when non-empty.
	// Relative paths are resolved against the scenario file location.
	DataDir string `yaml:"data_dir,omitempty"`

	// Args is the command line without the program name.
	Args []string `yaml:"args"`

	// QueryID is the fixed query ID for deterministic JSON output.
	// If empty, defaults to DefaultQueryID.
	QueryID string `yaml:"query_id,omitempty"`

	// Golden enables comparison against testdata/golden/{Name}.golden.
	Golden bool `yaml:"golden,omitempty"`

	// Assertions validate the exit code and captured output.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion validates one aspect of a scenario's outcome.
type Assertion struct {
	// Type specifies the assertion type:
	// - "exit_code": exit code equals Code
	// - "stdout_contains": stdout contains Text
	// - "stderr_contains": stderr contains Text
	// - "stdout_equals": stdout equals Text
	// - "stdout_empty": stdout is empty
	Type string `yaml:"type"`

	// Code is the expected exit code (used by exit_code).
	Code int `yaml:"code,omitempty"`

	// Text is the expected output fragment (used by the stdout/stderr types).
	Text string `yaml:"text,omitempty"`
}

// Assertion type constants.
const (
	AssertExitCode       = "exit_code"
	AssertStdoutContains = "stdout_contains"
	AssertStderrContains = "stderr_contains"
	AssertStdoutEquals   = "stdout_equals"
	AssertStdoutEmpty    = "stdout_empty"
)

// LoadScenario reads and parses a scenario YAML file, resolving data_dir
// relative to the file's directory.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	return LoadScenarioWithBasePath(path, filepath.Dir(path))
}

// LoadScenarioWithBasePath reads and parses a scenario YAML file,
// resolving data_dir relative to the provided base path.
func LoadScenarioWithBasePath(path, basePath string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}

	if scenario.DataDir != "" && !filepath.IsAbs(scenario.DataDir) && basePath != "" {
		scenario.DataDir = filepath.Join(basePath, scenario.DataDir)
	}

	return scenario, nil
}

// ParseScenario decodes and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadScenarios loads every *.yaml scenario in dir, sorted by file name.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		if prev, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("%s: duplicate scenario name %q (also in %s)", filepath.Base(path), s.Name, prev)
		}
		seen[s.Name] = filepath.Base(path)
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Args) == 0 {
		return fmt.Errorf("args list is required and must be non-empty")
	}

	if len(s.Assertions) == 0 && !s.Golden {
		return fmt.Errorf("assertions list is required unless golden is set")
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertExitCode:
		if a.Code < 0 {
			return fmt.Errorf("assertions[%d]: code must be non-negative for exit_code", index)
		}
	case AssertStdoutContains, AssertStderrContains:
		if a.Text == "" {
			return fmt.Errorf("assertions[%d]: text is required for %s", index, a.Type)
		}
	case AssertStdoutEquals, AssertStdoutEmpty:
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
