package panel

// Row is any dataset row keyed by entity label and observation year.
type Row interface {
	Entity() string
	Year() int
}

// Measurement is a Row carrying a single numeric observation.
type Measurement interface {
	Row
	Value() float64
}

// ForestChangeRow is one (entity, year) observation of net forest area change.
type ForestChangeRow struct {
	EntityName string
	Code       string
	YearValue  int
	ChangeHa   float64
}

// Entity returns the display label as loaded.
func (r ForestChangeRow) Entity() string { return r.EntityName }

// Year returns the observation year.
func (r ForestChangeRow) Year() int { return r.YearValue }

// Value returns the net change in hectares. Negative values are losses.
func (r ForestChangeRow) Value() float64 { return r.ChangeHa }

// IsCountry reports whether the row is classified as a country.
//
// A country code is exactly three uppercase ASCII letters. Blank codes,
// aggregate identifiers (e.g. "OWID_WRL") and anything else mark the row as
// an aggregate or region.
func (r ForestChangeRow) IsCountry() bool {
	return IsCountryCode(r.Code)
}

// IsCountryCode reports whether code is exactly three uppercase ASCII letters.
func IsCountryCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

// CO2Row is one (entity, year) observation of per-capita CO₂ emissions.
type CO2Row struct {
	EntityName      string
	YearValue       int
	TonnesPerCapita float64
}

// Entity returns the display label as loaded.
func (r CO2Row) Entity() string { return r.EntityName }

// Year returns the observation year.
func (r CO2Row) Year() int { return r.YearValue }

// Value returns emissions in tonnes per person.
func (r CO2Row) Value() float64 { return r.TonnesPerCapita }
