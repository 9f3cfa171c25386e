package query

import (
	"github.com/roach88/ecoquery/internal/entity"
	"github.com/roach88/ecoquery/internal/panel"
)

// Value is the result of a single-value lookup.
type Value struct {
	Entity string  `json:"entity"`
	Year   int     `json:"year"`
	Value  float64 `json:"value"`
}

// UniqueEntities returns the distinct entity labels of rows passing filter, in
// first-seen order.
func UniqueEntities[R panel.Row](rows []R, filter Filter[R]) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, row := range rows {
		if !filter.keeps(row) {
			continue
		}
		name := row.Entity()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// LatestYear returns the maximum year among rows passing filter.
// Returns a NO_DATA error if no row passes.
func LatestYear[R panel.Row](rows []R, filter Filter[R]) (int, error) {
	latest, found := 0, false
	for _, row := range rows {
		if !filter.keeps(row) {
			continue
		}
		if !found || row.Year() > latest {
			latest, found = row.Year(), true
		}
	}
	if !found {
		return 0, panel.NewNoDataForEntity("")
	}
	return latest, nil
}

// LatestYearForEntity returns the maximum year among rows for name passing
// filter. name must be an exact entity label. Returns a NO_DATA error naming
// the entity if there is none.
func LatestYearForEntity[R panel.Row](rows []R, name string, filter Filter[R]) (int, error) {
	latest, found := 0, false
	for _, row := range rows {
		if row.Entity() != name || !filter.keeps(row) {
			continue
		}
		if !found || row.Year() > latest {
			latest, found = row.Year(), true
		}
	}
	if !found {
		return 0, panel.NewNoDataForEntity(name)
	}
	return latest, nil
}

// ResolveEntity matches a free-text query against the entities passing filter.
func ResolveEntity[R panel.Row](rows []R, entityQuery string, filter Filter[R]) (string, error) {
	return entity.Resolve(entityQuery, UniqueEntities(rows, filter))
}

// ValueForEntityYear looks up the value for a free-text entity query.
//
// The query is resolved against the entities passing filter. A nil year
// defaults to the latest year for the resolved entity. The first row in load
// order matching (entity, year) supplies the value; this scan ignores filter.
func ValueForEntityYear[R panel.Measurement](rows []R, entityQuery string, year *int, filter Filter[R]) (Value, error) {
	name, err := ResolveEntity(rows, entityQuery, filter)
	if err != nil {
		return Value{}, err
	}

	y, err := yearOrLatest(rows, name, year, filter)
	if err != nil {
		return Value{}, err
	}

	for _, row := range rows {
		if row.Entity() == name && row.Year() == y {
			return Value{Entity: name, Year: y, Value: row.Value()}, nil
		}
	}
	return Value{}, panel.NewNoData(name, y)
}

func yearOrLatest[R panel.Row](rows []R, name string, year *int, filter Filter[R]) (int, error) {
	if year != nil {
		return *year, nil
	}
	return LatestYearForEntity(rows, name, filter)
}
