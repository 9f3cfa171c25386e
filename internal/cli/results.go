package cli

import (
	"io"

	"github.com/roach88/ecoquery/internal/query"
	"github.com/roach88/ecoquery/internal/report"
)

// ValueResult is a single (entity, year) value.
type ValueResult struct {
	Dataset string  `json:"dataset"`
	Metric  string  `json:"metric"`
	Unit    string  `json:"unit"`
	Entity  string  `json:"entity"`
	Year    int     `json:"year"`
	Value   float64 `json:"value"`
}

// Text renders the single-value line.
func (r ValueResult) Text(p *report.Printer) string {
	return p.SingleValue(r.Entity, r.Year, r.Metric, r.Value, r.Unit)
}

// RankResult is the rank of one entity among all entities in a year.
type RankResult struct {
	Dataset string      `json:"dataset"`
	Metric  string      `json:"metric"`
	Unit    string      `json:"unit"`
	Order   query.Order `json:"order"`
	Entity  string      `json:"entity"`
	Year    int         `json:"year"`
	Rank    int         `json:"rank"`
	Total   int         `json:"total"`
	Value   float64     `json:"value"`
}

// Text renders the "rank K of N" line.
func (r RankResult) Text(p *report.Printer) string {
	return p.Rank(report.RankResult{
		Entity:  r.Entity,
		Year:    r.Year,
		Context: report.RankContext{Metric: r.Metric, Unit: r.Unit, Order: r.Order},
		Rank:    r.Rank,
		Total:   r.Total,
		Value:   r.Value,
	})
}

// ListResult is a titled, ranked list of entities for one year.
type ListResult struct {
	Title         string        `json:"title"`
	Dataset       string        `json:"dataset"`
	Metric        string        `json:"metric"`
	Unit          string        `json:"unit"`
	Year          int           `json:"year"`
	Order         query.Order   `json:"order,omitempty"`
	CountriesOnly bool          `json:"countries_only"`
	Entries       []query.Entry `json:"entries"`
}

// Text renders the title and numbered lines.
func (r ListResult) Text(p *report.Printer) string {
	return p.TopList(r.Title, r.Entries, r.Unit)
}

// Table renders the list as a table under its title.
func (r ListResult) Table(w io.Writer, p *report.Printer) error {
	return p.RenderTable(w, r.Title, r.Entries, r.Unit)
}

// EntitiesResult lists the distinct entities of a dataset.
type EntitiesResult struct {
	Dataset       string   `json:"dataset"`
	CountriesOnly bool     `json:"countries_only"`
	Entities      []string `json:"entities"`
}

// Text renders one entity per line.
func (r EntitiesResult) Text(*report.Printer) string {
	return report.EntityList(r.Entities)
}
