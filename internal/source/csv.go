package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/roach88/ecoquery/internal/panel"
)

// Record maps column name to the raw field value of one CSV row.
type Record map[string]string

// Get returns the named field, or "" if the row has no such column.
func (r Record) Get(column string) string {
	return r[column]
}

// Table is the decoded content of one CSV file.
type Table struct {
	// Path is the file the table was read from.
	Path string

	// Header lists column names in file order.
	Header []string

	// Records holds data rows in file order.
	Records []Record

	// Lines holds the 1-based source line of each record.
	Lines []int
}

// HasColumn reports whether the header contains column.
func (t *Table) HasColumn(column string) bool {
	for _, h := range t.Header {
		if h == column {
			return true
		}
	}
	return false
}

// RequireColumns returns a MALFORMED_INPUT error naming the first column
// missing from the header.
func (t *Table) RequireColumns(columns ...string) error {
	for _, c := range columns {
		if !t.HasColumn(c) {
			return panel.NewMalformedInput(t.Path, 0, fmt.Errorf("missing column %q", c))
		}
	}
	return nil
}

// ReadFile reads the CSV file at path.
//
// Returns FILE_NOT_FOUND if the file does not exist and MALFORMED_INPUT if
// it has no header row or cannot be decoded. Rows may be shorter or longer
// than the header; missing fields read as "" and extra fields are dropped.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, panel.NewFileNotFound(path, err)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return Read(path, f)
}

// Read decodes CSV from r. path is used for error reporting only.
func Read(path string, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, panel.NewNoHeaderRow(path)
	}
	if err != nil {
		return nil, panel.NewMalformedInput(path, 1, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	table := &Table{Path: path, Header: header}
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, panel.NewMalformedInput(path, pe.Line, pe.Err)
			}
			return nil, panel.NewMalformedInput(path, 0, err)
		}

		line, _ := reader.FieldPos(0)
		rec := make(Record, len(header))
		for i, name := range header {
			if i < len(fields) {
				rec[name] = fields[i]
			} else {
				rec[name] = ""
			}
		}
		table.Records = append(table.Records, rec)
		table.Lines = append(table.Lines, line)
	}
	return table, nil
}
