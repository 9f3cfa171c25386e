package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/ecoquery/internal/panel"
	"github.com/roach88/ecoquery/internal/report"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Unanticipated failure
	ExitCommandError = 2 // User-facing query error (unknown entity, no data, missing file, bad flag)
)

// ExitError represents an error with a specific exit code.
// Commands return it after the message has been written to the user.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Error code constants, one per user-facing error kind.
const (
	ErrCodeGeneric         = "E001" // Generic/unknown error
	ErrCodeFileNotFound    = "E002" // Dataset file missing
	ErrCodeMalformedInput  = "E003" // No header row, missing column, bad number
	ErrCodeUnknownEntity   = "E004" // Entity query did not resolve
	ErrCodeNoData          = "E005" // Valid query, no matching rows
	ErrCodeInvalidArgument = "E006" // Bad flag value or argument
	ErrCodeConfig          = "E007" // Config file unreadable or invalid
)

// MapKindToErrorCode maps a query error kind to an error code.
func MapKindToErrorCode(kind panel.Kind) string {
	switch kind {
	case panel.KindFileNotFound:
		return ErrCodeFileNotFound
	case panel.KindMalformedInput:
		return ErrCodeMalformedInput
	case panel.KindUnknownEntity:
		return ErrCodeUnknownEntity
	case panel.KindNoData:
		return ErrCodeNoData
	case panel.KindInvalidArgument:
		return ErrCodeInvalidArgument
	default:
		return ErrCodeGeneric
	}
}

// OutputFormatter handles text, table and JSON output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Text-mode errors go here (defaults to Writer)
	Verbose   bool
	TraceID   string          // Query ID attached to JSON responses
	Printer   *report.Printer // Number formatting for text and table output
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status  string      `json:"status"`             // "ok" or "error"
	Data    interface{} `json:"data,omitempty"`     // success payload
	Error   *CLIError   `json:"error,omitempty"`    // error details
	TraceID string      `json:"trace_id,omitempty"` // query ID
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`              // "E001", "E002", etc.
	Message string      `json:"message"`           // human-readable message
	Details interface{} `json:"details,omitempty"` // additional context
}

// Result is a query result renderable in every output format.
type Result interface {
	Text(p *report.Printer) string
}

// tabular results render differently in table format.
type tabular interface {
	Table(w io.Writer, p *report.Printer) error
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetEscapeHTML(false)
		return enc.Encode(CLIResponse{
			Status:  "ok",
			Data:    data,
			TraceID: f.TraceID,
		})
	}

	// Human-readable text output
	fmt.Fprintln(f.Writer, data)
	return nil
}

// Result outputs a query result in the configured format.
func (f *OutputFormatter) Result(r Result) error {
	switch f.Format {
	case "json":
		return f.Success(r)
	case "table":
		if t, ok := r.(tabular); ok {
			return t.Table(f.Writer, f.printer())
		}
	}
	return f.Success(r.Text(f.printer()))
}

// Error outputs an error in the configured format.
// JSON errors go to Writer so the response stays machine-readable;
// text errors go to ErrWriter.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetEscapeHTML(false)
		return enc.Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
			TraceID: f.TraceID,
		})
	}

	w := f.GetErrWriter()
	fmt.Fprintf(w, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(w, "Details: %v\n", details)
	}
	return nil
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

func (f *OutputFormatter) printer() *report.Printer {
	if f.Printer == nil {
		return report.NewPrinter(report.DefaultDecimals)
	}
	return f.Printer
}

// reportError writes a user-facing error and converts it to an ExitError.
// Errors that are not query errors are returned unchanged and handled as
// unanticipated failures by the caller.
func reportError(f *OutputFormatter, err error) error {
	if !panel.IsUserError(err) {
		return err
	}
	code := MapKindToErrorCode(panel.KindOf(err))
	_ = f.Error(code, err.Error(), errorDetails(err))
	return WrapExitError(ExitCommandError, code, err)
}

// errorDetails extracts structured context from a query error.
func errorDetails(err error) map[string]interface{} {
	var pe *panel.Error
	if !errors.As(err, &pe) {
		return nil
	}
	details := map[string]interface{}{"kind": string(pe.Kind)}
	if pe.Path != "" {
		details["path"] = pe.Path
	}
	if pe.Line > 0 {
		details["line"] = pe.Line
	}
	if pe.Entity != "" {
		details["entity"] = pe.Entity
	}
	if pe.HasYear {
		details["year"] = pe.Year
	}
	if len(pe.Suggestions) > 0 {
		details["suggestions"] = pe.Suggestions
	}
	return details
}
