package dataset

import (
	"github.com/roach88/ecoquery/internal/panel"
	"github.com/roach88/ecoquery/internal/query"
)

const (
	// ForestChangeFilename is the forest dataset file inside the data directory.
	ForestChangeFilename = "annual-change-forest-area.csv"

	// ForestChangeColumn is the measured column and the metric's display name.
	ForestChangeColumn = "Annual change in forest area"

	// ForestChangeUnit is the display unit of forest change values.
	ForestChangeUnit = "ha"

	forestLabel = "forest change"
)

// LoadForestChange reads the forest dataset from dataDir.
func LoadForestChange(dataDir string) ([]panel.ForestChangeRow, error) {
	ms, err := readMeasurements(dataPath(dataDir, ForestChangeFilename), ForestChangeColumn, CodeColumn)
	if err != nil {
		return nil, err
	}
	rows := make([]panel.ForestChangeRow, len(ms))
	for i, m := range ms {
		rows[i] = panel.ForestChangeRow{
			EntityName: m.entity,
			Code:       m.code,
			YearValue:  m.year,
			ChangeHa:   m.value,
		}
	}
	return rows, nil
}

// Forest answers queries over forest-change rows.
type Forest struct {
	Rows []panel.ForestChangeRow

	// OnlyCountries excludes aggregate rows (World, Africa, ...).
	OnlyCountries bool
}

// Filter returns the row filter for the configured country restriction.
func (f Forest) Filter() query.Filter[panel.ForestChangeRow] {
	if !f.OnlyCountries {
		return query.All[panel.ForestChangeRow]()
	}
	return func(r panel.ForestChangeRow) bool { return r.IsCountry() }
}

// Entities returns the distinct entity labels in first-seen order.
func (f Forest) Entities() []string {
	return query.UniqueEntities(f.Rows, f.Filter())
}

// LatestYear returns the most recent year present.
func (f Forest) LatestYear() (int, error) {
	y, err := query.LatestYear(f.Rows, f.Filter())
	return y, panel.WithDataset(err, forestLabel)
}

// LatestYearForEntity returns the most recent year with data for name.
func (f Forest) LatestYearForEntity(name string) (int, error) {
	y, err := query.LatestYearForEntity(f.Rows, name, f.Filter())
	return y, panel.WithDataset(err, forestLabel)
}

// ValueForEntityYear looks up one forest-change value. A nil year uses the
// entity's latest year.
func (f Forest) ValueForEntityYear(entityQuery string, year *int) (query.Value, error) {
	v, err := query.ValueForEntityYear(f.Rows, entityQuery, year, f.Filter())
	return v, panel.WithDataset(err, forestLabel)
}

// RankEntities returns the top n entities for year in the given order.
func (f Forest) RankEntities(year int, order query.Order, n int) ([]query.Entry, error) {
	entries, err := query.Ranked(f.Rows, year, order, n, f.Filter())
	return entries, panel.WithDataset(err, forestLabel)
}

// RankForEntity returns the rank of one entity. A nil year uses the entity's
// latest year.
func (f Forest) RankForEntity(entityQuery string, year *int, order query.Order) (query.Rank, error) {
	r, err := query.RankOfEntity(f.Rows, entityQuery, year, order, f.Filter())
	return r, panel.WithDataset(err, forestLabel)
}

// CountForYear returns the number of entities with data for year.
func (f Forest) CountForYear(year int) int {
	return query.CountForYear(f.Rows, year, f.Filter())
}
