// Package query implements the row query engine shared by both datasets.
//
// Every operation is a pure function over a slice of rows in load order.
// Nothing here mutates its input, so a loaded dataset can be shared freely
// between concurrent callers.
//
// Operations accept an optional Filter. Dataset adapters use it to express
// the country/aggregate split; a nil Filter keeps every row.
//
// # Ordering
//
// Rankings sort on (value, entity) so that equal values resolve in a fixed,
// reproducible order. For descending orders the entity tie-break is also
// descending.
//
// # Filter asymmetry
//
// ValueForEntityYear uses the Filter to choose candidate names and the
// default year, but the final row scan does not filter. A value can come
// from a row that would itself fail the Filter as long as its entity name
// matches.
package query
