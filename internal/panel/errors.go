package panel

import (
	"errors"
	"fmt"
	"strings"
)

// Kind categorizes user-facing query errors.
type Kind string

const (
	// KindFileNotFound indicates the backing dataset file is absent.
	KindFileNotFound Kind = "FILE_NOT_FOUND"

	// KindMalformedInput indicates the source data could not be decoded
	// (no header row, missing column, non-numeric field).
	KindMalformedInput Kind = "MALFORMED_INPUT"

	// KindUnknownEntity indicates a query did not resolve to any known entity.
	KindUnknownEntity Kind = "UNKNOWN_ENTITY"

	// KindNoData indicates a well-formed query matched no rows.
	KindNoData Kind = "NO_DATA"

	// KindInvalidArgument indicates a structurally invalid parameter.
	KindInvalidArgument Kind = "INVALID_ARGUMENT"
)

// Error is a terminal, user-facing failure for the current query.
//
// The structured fields let callers report context without parsing the
// message. Which fields are set depends on Kind:
//   - FILE_NOT_FOUND, MALFORMED_INPUT: Path (and Line for bad rows)
//   - UNKNOWN_ENTITY: Suggestions, most similar first (at most 5)
//   - NO_DATA: Dataset, Entity and/or Year
type Error struct {
	// Kind identifies the error category.
	Kind Kind

	// Message overrides the rendered message when non-empty.
	Message string

	// Path is the dataset file involved, if any.
	Path string

	// Line is the 1-based source line of a malformed row.
	Line int

	// Dataset is a short human label ("forest change") used in NO_DATA messages.
	Dataset string

	// Entity is the resolved entity label that produced an empty result.
	Entity string

	// Year is the year that produced an empty result. Only meaningful when
	// HasYear is set, since 0 is a valid year.
	Year    int
	HasYear bool

	// Suggestions lists close entity labels for UNKNOWN_ENTITY.
	Suggestions []string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	switch e.Kind {
	case KindFileNotFound:
		return fmt.Sprintf("CSV file not found: %s", e.Path)
	case KindMalformedInput:
		if e.Err != nil {
			return fmt.Sprintf("malformed CSV file %s: %v", e.Path, e.Err)
		}
		return fmt.Sprintf("malformed CSV file: %s", e.Path)
	case KindUnknownEntity:
		if len(e.Suggestions) > 0 {
			return "Unknown entity name. Did you mean one of: " + strings.Join(e.Suggestions, ", ")
		}
		return "Unknown entity name."
	case KindNoData:
		return e.noDataMessage()
	case KindInvalidArgument:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "invalid argument"
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) noDataMessage() string {
	subject := "No data"
	if e.Dataset != "" {
		subject = fmt.Sprintf("No %s data", e.Dataset)
	}
	switch {
	case e.Entity != "" && e.HasYear:
		return fmt.Sprintf("%s for %s in %d.", subject, e.Entity, e.Year)
	case e.HasYear:
		return fmt.Sprintf("%s found for year %d.", subject, e.Year)
	case e.Entity != "":
		return fmt.Sprintf("%s found for entity: %s", subject, e.Entity)
	}
	return subject + " available."
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewFileNotFound creates a FILE_NOT_FOUND error for path.
func NewFileNotFound(path string, err error) *Error {
	return &Error{Kind: KindFileNotFound, Path: path, Err: err}
}

// NewNoHeaderRow creates a MALFORMED_INPUT error for a file without a header.
func NewNoHeaderRow(path string) *Error {
	return &Error{
		Kind:    KindMalformedInput,
		Path:    path,
		Message: fmt.Sprintf("CSV file has no header row: %s", path),
	}
}

// NewMalformedInput creates a MALFORMED_INPUT error for path.
// Line is 0 when the problem is not tied to a single row.
func NewMalformedInput(path string, line int, err error) *Error {
	e := &Error{Kind: KindMalformedInput, Path: path, Line: line, Err: err}
	if line > 0 {
		e.Message = fmt.Sprintf("malformed CSV file %s (line %d): %v", path, line, err)
	}
	return e
}

// NewUnknownEntity creates an UNKNOWN_ENTITY error with optional suggestions.
func NewUnknownEntity(suggestions []string) *Error {
	return &Error{Kind: KindUnknownEntity, Suggestions: suggestions}
}

// NewNoData creates a NO_DATA error naming year, and entity when non-empty.
func NewNoData(entity string, year int) *Error {
	return &Error{Kind: KindNoData, Entity: entity, Year: year, HasYear: true}
}

// NewNoDataForEntity creates a NO_DATA error that names no year. Pass "" when
// the whole dataset is empty.
func NewNoDataForEntity(entity string) *Error {
	return &Error{Kind: KindNoData, Entity: entity}
}

// NewInvalidArgument creates an INVALID_ARGUMENT error.
func NewInvalidArgument(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Err: fmt.Errorf(format, args...)}
}

// WithDataset labels a NO_DATA error with the dataset it came from.
// Other errors are returned unchanged.
func WithDataset(err error, dataset string) error {
	var pe *Error
	if !errors.As(err, &pe) || pe.Kind != KindNoData {
		return err
	}
	labeled := *pe
	labeled.Dataset = dataset
	return &labeled
}

// KindOf returns the Kind of err, or "" if err is not an *Error.
// Uses errors.As to handle wrapped errors.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

// IsUnknownEntity returns true if err is an UNKNOWN_ENTITY error.
func IsUnknownEntity(err error) bool {
	return KindOf(err) == KindUnknownEntity
}

// IsNoData returns true if err is a NO_DATA error.
func IsNoData(err error) bool {
	return KindOf(err) == KindNoData
}

// IsInvalidArgument returns true if err is an INVALID_ARGUMENT error.
func IsInvalidArgument(err error) bool {
	return KindOf(err) == KindInvalidArgument
}

// IsUserError returns true if err is any user-facing query error.
func IsUserError(err error) bool {
	return KindOf(err) != ""
}
