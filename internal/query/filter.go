package query

import "github.com/roach88/ecoquery/internal/panel"

// Filter decides whether a row takes part in a query. A nil Filter keeps
// every row.
type Filter[R panel.Row] func(R) bool

// keeps applies f, treating nil as accept-all.
func (f Filter[R]) keeps(row R) bool {
	return f == nil || f(row)
}

// All returns a Filter that keeps every row.
func All[R panel.Row]() Filter[R] {
	return func(R) bool { return true }
}
