// Package harness runs conformance scenarios against the ecoquery CLI.
//
// A scenario is a YAML file naming one command line and the assertions its
// outcome must satisfy. The harness executes the command in-process with a
// fixed query ID, captures stdout, stderr and the exit code, and evaluates
// the assertions. Scenarios marked golden also compare the captured output
// against testdata/golden/{name}.golden.
//
// # Scenario Format
//
//	name: ranking_brazil_2020
//	description: "Brazil ranks first for forest loss among countries in 2020"
//	data_dir: ../../../../testdata/data
//	args: [ranking, Brazil, --year, "2020"]
//	golden: true
//	assertions:
//	  - type: exit_code
//	    code: 0
//	  - type: stdout_contains
//	    text: "1 of 6"
//
// data_dir is resolved relative to the scenario file and passed as
// --data-dir. It may be omitted when args already select the data.
//
// # Assertion Types
//
//   - exit_code: the process exit code equals code
//   - stdout_contains: stdout contains text
//   - stderr_contains: stderr contains text
//   - stdout_equals: stdout equals text exactly
//   - stdout_empty: nothing was written to stdout
//
// # Golden Files
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
package harness
