package domain

// Zone type tags as they appear in the zone catalog.
// Tags are singular so that a plural display mode selects them by
// prefix: mode "communes" selects zones tagged "commune".
const (
	ZoneTypeEurope     = "europe"
	ZoneTypeRegion     = "region"
	ZoneTypeProvince   = "province"
	ZoneTypeCommunaute = "communaute"
	ZoneTypeCommune    = "commune"
)

// ZoneName holds the bilingual display name of a zone.
type ZoneName struct {
	// FR is the French display name. Always present for catalog zones.
	FR string `json:"fr"`

	// NL is the Dutch display name. Empty on stub zones.
	NL string `json:"nl,omitempty"`
}

// ZoneRecord is one canonical zone from the static catalog: a country,
// a sub-national community, a region, a province or a municipality.
// Records are immutable after the catalog is loaded.
type ZoneRecord struct {
	// NSI is the natural identifier, unique across the catalog.
	NSI string `json:"nsi"`

	// Type is the zone kind tag (see ZoneType constants).
	Type string `json:"type"`

	// Name is the bilingual display name.
	Name ZoneName `json:"name"`

	// Code is the ISO 3166-1 alpha-2 code. Only set for countries
	// and for stub zones synthesized from a feature.
	Code string `json:"code,omitempty"`

	// Wikipedia is the French Wikipedia article title, when the zone
	// declares one. Empty means no article is fetched.
	Wikipedia string `json:"wikipedia,omitempty"`

	// Color is the declared display color, used to paint the children
	// of this zone on the municipality layer.
	Color string `json:"color,omitempty"`

	// Children lists the NSIs of zones this zone contains. These are
	// back-references: each entry resolves to another record's NSI.
	Children []string `json:"children,omitempty"`

	// Capital is the capital city name, when known.
	Capital string `json:"capital,omitempty"`

	// CEEAccession is the accession-year tag ("founder", "1973", ...)
	// for countries that joined the union. Used only to pick a color.
	CEEAccession string `json:"cee_accession,omitempty"`
}

// IsCEE reports whether the zone carries an accession-year tag.
func (z *ZoneRecord) IsCEE() bool {
	return z.CEEAccession != ""
}
