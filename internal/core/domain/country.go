package domain

// CountryRecord is auxiliary country metadata from the static country
// catalog, keyed externally by ISO 3166-1 alpha-2 code. It is merged
// onto matched and stub zones alike during enrichment.
type CountryRecord struct {
	// Name is the country display name.
	Name string `json:"name"`

	// Capital is the capital city name.
	Capital string `json:"capital,omitempty"`

	// CEEAccession is the accession-year tag, empty for non-members.
	CEEAccession string `json:"cee_accession,omitempty"`
}
