package source

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInt parses a base-10 integer, ignoring surrounding whitespace.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return n, nil
}

// ParseFloat parses a float, ignoring surrounding whitespace.
// An empty field reports ok=false with no error: the value is absent.
func ParseFloat(s string) (value float64, ok bool, err error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid number %q", s)
	}
	return v, true, nil
}
