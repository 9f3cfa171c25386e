package dataset

import "github.com/roach88/ecoquery/internal/panel"

// CountrySet is the set of entity labels classified as countries.
type CountrySet map[string]struct{}

// Contains reports whether name is a country.
func (s CountrySet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// DeriveCountrySet returns the distinct entities of rows classified as
// countries. The forest dataset is the only source of this classification.
func DeriveCountrySet(rows []panel.ForestChangeRow) CountrySet {
	set := make(CountrySet)
	for _, r := range rows {
		if r.IsCountry() {
			set[r.EntityName] = struct{}{}
		}
	}
	return set
}

// LoadCountrySet loads the forest dataset from dataDir and derives the
// country set from it.
func LoadCountrySet(dataDir string) (CountrySet, error) {
	rows, err := LoadForestChange(dataDir)
	if err != nil {
		return nil, err
	}
	return DeriveCountrySet(rows), nil
}
