package report

import (
	"fmt"
	"strings"

	"github.com/roach88/ecoquery/internal/query"
)

// RankContext describes how a ranking was computed.
type RankContext struct {
	Metric string
	Unit   string
	Order  query.Order
}

// RankResult is the rank of a single entity in a specific year.
type RankResult struct {
	Entity  string
	Year    int
	Context RankContext
	Rank    int
	Total   int
	Value   float64
}

// SingleValue renders "<metric> for <entity> in <year>: <value> <unit>".
func (p *Printer) SingleValue(entity string, year int, metric string, value float64, unit string) string {
	return fmt.Sprintf("%s for %s in %d: %s %s", metric, entity, year, p.Number(value), unit)
}

// Rank renders a RankResult on one line.
func (p *Printer) Rank(r RankResult) string {
	return fmt.Sprintf("%s rank in %d (%s, order=%s): %d of %d | value: %s %s",
		r.Entity, r.Year, r.Context.Metric, r.Context.Order, r.Rank, r.Total, p.Number(r.Value), r.Context.Unit)
}

// TopList renders title followed by a numbered line per entry.
func (p *Printer) TopList(title string, entries []query.Entry, unit string) string {
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, title)
	for i, e := range entries {
		lines = append(lines, fmt.Sprintf("%d. %s: %s %s", i+1, e.Entity, p.Number(e.Value), unit))
	}
	return strings.Join(lines, "\n")
}

// EntityList renders one entity label per line.
func EntityList(names []string) string {
	return strings.Join(names, "\n")
}
