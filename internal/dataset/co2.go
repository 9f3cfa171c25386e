package dataset

import (
	"github.com/roach88/ecoquery/internal/panel"
	"github.com/roach88/ecoquery/internal/query"
)

const (
	// CO2Filename is the CO₂ dataset file inside the data directory.
	CO2Filename = "co-emissions-per-capita.csv"

	// CO2Column is the measured column and the metric's display name.
	CO2Column = "Annual CO₂ emissions (per capita)"

	// CO2Unit is the display unit of CO₂ values.
	CO2Unit = "t/person"

	co2Label = "CO₂ per-capita"
)

// LoadCO2 reads the CO₂ dataset from dataDir.
func LoadCO2(dataDir string) ([]panel.CO2Row, error) {
	ms, err := readMeasurements(dataPath(dataDir, CO2Filename), CO2Column)
	if err != nil {
		return nil, err
	}
	rows := make([]panel.CO2Row, len(ms))
	for i, m := range ms {
		rows[i] = panel.CO2Row{
			EntityName:      m.entity,
			YearValue:       m.year,
			TonnesPerCapita: m.value,
		}
	}
	return rows, nil
}

// CO2 answers queries over CO₂ per-capita rows.
type CO2 struct {
	Rows []panel.CO2Row

	// OnlyCountries restricts queries to entities in Countries.
	OnlyCountries bool

	// Countries is the country set derived from the forest dataset. When nil
	// no restriction applies, even with OnlyCountries set.
	Countries CountrySet
}

// Filter returns the row filter for the configured country restriction.
func (c CO2) Filter() query.Filter[panel.CO2Row] {
	if !c.OnlyCountries || c.Countries == nil {
		return query.All[panel.CO2Row]()
	}
	return func(r panel.CO2Row) bool { return c.Countries.Contains(r.EntityName) }
}

// Entities returns the distinct entity labels in first-seen order.
func (c CO2) Entities() []string {
	return query.UniqueEntities(c.Rows, c.Filter())
}

// LatestYear returns the most recent year present.
func (c CO2) LatestYear() (int, error) {
	y, err := query.LatestYear(c.Rows, c.Filter())
	return y, panel.WithDataset(err, co2Label)
}

// LatestYearForEntity returns the most recent year with data for name.
func (c CO2) LatestYearForEntity(name string) (int, error) {
	y, err := query.LatestYearForEntity(c.Rows, name, c.Filter())
	return y, panel.WithDataset(err, co2Label)
}

// ValueForEntityYear looks up one CO₂ value. A nil year uses the entity's
// latest year.
func (c CO2) ValueForEntityYear(entityQuery string, year *int) (query.Value, error) {
	v, err := query.ValueForEntityYear(c.Rows, entityQuery, year, c.Filter())
	return v, panel.WithDataset(err, co2Label)
}

// TopEmitters returns the n highest per-capita emitters for year.
func (c CO2) TopEmitters(year, n int) ([]query.Entry, error) {
	entries, err := query.TopN(c.Rows, year, n, c.Filter())
	return entries, panel.WithDataset(err, co2Label)
}

// CountForYear returns the number of entities with data for year.
func (c CO2) CountForYear(year int) int {
	return query.CountForYear(c.Rows, year, c.Filter())
}
