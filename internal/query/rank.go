package query

import (
	"sort"

	"github.com/roach88/ecoquery/internal/panel"
)

// Order selects the ranking direction.
type Order string

const (
	// OrderLoss ranks the most negative values first.
	OrderLoss Order = "loss"

	// OrderGain ranks the most positive values first.
	OrderGain Order = "gain"
)

// ValidOrders lists the accepted Order values.
var ValidOrders = []Order{OrderLoss, OrderGain}

// ParseOrder validates s as an Order.
// Returns an INVALID_ARGUMENT error for anything but "loss" or "gain".
func ParseOrder(s string) (Order, error) {
	for _, o := range ValidOrders {
		if Order(s) == o {
			return o, nil
		}
	}
	return "", panel.NewInvalidArgument("order must be 'loss' or 'gain'.")
}

// Entry is one line of a ranked list.
type Entry struct {
	Entity string  `json:"entity"`
	Value  float64 `json:"value"`
}

// Rank is the position of one entity within a year's ranking.
type Rank struct {
	Entity string  `json:"entity"`
	Year   int     `json:"year"`
	Rank   int     `json:"rank"`
	Value  float64 `json:"value"`
}

// YearRows returns the rows for year passing filter, in load order.
func YearRows[R panel.Row](rows []R, year int, filter Filter[R]) []R {
	var out []R
	for _, row := range rows {
		if row.Year() == year && filter.keeps(row) {
			out = append(out, row)
		}
	}
	return out
}

// CountForYear returns the number of rows for year passing filter.
func CountForYear[R panel.Row](rows []R, year int, filter Filter[R]) int {
	n := 0
	for _, row := range rows {
		if row.Year() == year && filter.keeps(row) {
			n++
		}
	}
	return n
}

// SortedForYear returns the year's rows passing filter sorted by
// (value, entity): ascending for OrderLoss, descending for OrderGain.
//
// Returns INVALID_ARGUMENT for an unknown order and NO_DATA naming the year
// when no row is selected. The input slice is not modified.
func SortedForYear[R panel.Measurement](rows []R, year int, order Order, filter Filter[R]) ([]R, error) {
	if _, err := ParseOrder(string(order)); err != nil {
		return nil, err
	}

	selected := YearRows(rows, year, filter)
	if len(selected) == 0 {
		return nil, panel.NewNoData("", year)
	}

	less := ascending[R]
	if order == OrderGain {
		less = descending[R]
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return less(selected[i], selected[j])
	})
	return selected, nil
}

func ascending[R panel.Measurement](a, b R) bool {
	if a.Value() != b.Value() {
		return a.Value() < b.Value()
	}
	return a.Entity() < b.Entity()
}

func descending[R panel.Measurement](a, b R) bool {
	if a.Value() != b.Value() {
		return a.Value() > b.Value()
	}
	return a.Entity() > b.Entity()
}

// Ranked returns at most n entries for year in the given order.
// n larger than the available rows is not an error.
func Ranked[R panel.Measurement](rows []R, year int, order Order, n int, filter Filter[R]) ([]Entry, error) {
	sorted, err := SortedForYear(rows, year, order, filter)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}

	entries := make([]Entry, n)
	for i, row := range sorted[:n] {
		entries[i] = Entry{Entity: row.Entity(), Value: row.Value()}
	}
	return entries, nil
}

// TopN returns at most n entries for year with the highest values first.
// Equal values are ordered by entity label, descending.
func TopN[R panel.Measurement](rows []R, year int, n int, filter Filter[R]) ([]Entry, error) {
	return Ranked(rows, year, OrderGain, n, filter)
}

// RankOfEntity returns the 1-based rank of the entity matching entityQuery.
//
// The query is resolved against the entities passing filter. A nil year
// defaults to the latest year for the resolved entity. Returns
// INVALID_ARGUMENT for an unknown order, and NO_DATA when the year has no
// rows or the entity has no row in it.
func RankOfEntity[R panel.Measurement](rows []R, entityQuery string, year *int, order Order, filter Filter[R]) (Rank, error) {
	name, err := ResolveEntity(rows, entityQuery, filter)
	if err != nil {
		return Rank{}, err
	}

	y, err := yearOrLatest(rows, name, year, filter)
	if err != nil {
		return Rank{}, err
	}

	sorted, err := SortedForYear(rows, y, order, filter)
	if err != nil {
		return Rank{}, err
	}

	for i, row := range sorted {
		if row.Entity() == name {
			return Rank{Entity: name, Year: y, Rank: i + 1, Value: row.Value()}, nil
		}
	}
	return Rank{}, panel.NewNoData(name, y)
}
