package dataset

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/roach88/ecoquery/internal/panel"
	"github.com/roach88/ecoquery/internal/source"
)

// Column names shared by both CSV files.
const (
	EntityColumn = "Entity"
	CodeColumn   = "Code"
	YearColumn   = "Year"
)

// measurement is one decoded (entity, year, value) triple plus the raw code.
type measurement struct {
	entity string
	code   string
	year   int
	value  float64
}

// readMeasurements loads path and decodes each record's entity, year and the
// named value column. Records with an empty value are dropped.
func readMeasurements(path, valueColumn string, required ...string) ([]measurement, error) {
	table, err := source.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cols := append([]string{EntityColumn, YearColumn, valueColumn}, required...)
	if err := table.RequireColumns(cols...); err != nil {
		return nil, err
	}

	out := make([]measurement, 0, len(table.Records))
	dropped := 0
	for i, rec := range table.Records {
		value, ok, err := source.ParseFloat(rec.Get(valueColumn))
		if err != nil {
			return nil, panel.NewMalformedInput(path, table.Lines[i], fmt.Errorf("%s: %w", valueColumn, err))
		}
		if !ok {
			dropped++
			continue
		}
		year, err := source.ParseInt(rec.Get(YearColumn))
		if err != nil {
			return nil, panel.NewMalformedInput(path, table.Lines[i], fmt.Errorf("%s: %w", YearColumn, err))
		}
		out = append(out, measurement{
			entity: strings.TrimSpace(rec.Get(EntityColumn)),
			code:   strings.TrimSpace(rec.Get(CodeColumn)),
			year:   year,
			value:  value,
		})
	}

	slog.Debug("dataset loaded", "path", path, "rows", len(out), "dropped", dropped)
	return out, nil
}

// dataPath joins the data directory and a dataset file name.
func dataPath(dataDir, name string) string {
	return filepath.Join(dataDir, name)
}
