package harness

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates all assertions held.
	Pass bool `json:"pass"`

	// ExitCode is the code the process would have exited with.
	ExitCode int `json:"exit_code"`

	// Stdout and Stderr hold everything the command wrote.
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`

	// Errors contains assertion failure messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for test execution.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
