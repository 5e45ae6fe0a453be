package domain

import "encoding/json"

// FeatureCollection is a standard GeoJSON feature collection as fetched
// from a <mode>.geo.json source.
type FeatureCollection struct {
	Type     string     `json:"type"`
	Features []*Feature `json:"features"`
}

// Feature is one geometry + attributes record. The geometry is opaque
// to this module and passed through unmodified; the properties bag is
// enriched in place after the collection is fetched.
type Feature struct {
	Type string `json:"type"`

	// Geometry is kept as raw JSON. The core never inspects it.
	Geometry json.RawMessage `json:"geometry,omitempty"`

	// Nom is a feature-level name attribute present on bare geometries
	// that carry no properties bag at all.
	Nom string `json:"nom,omitempty"`

	// Properties is the attribute bag. Nil for bare geometries until
	// the enricher synthesizes one.
	Properties *Properties `json:"properties,omitempty"`
}

// Properties is the per-feature attribute bag: the raw name sources
// from the data file plus the fields attached by enrichment.
type Properties struct {
	// Raw attributes from the feature file.

	// Varname1 is a pipe-delimited list of alternate names.
	Varname1 string `json:"VARNAME_1,omitempty"`

	// Nom is the municipal name field.
	Nom string `json:"nom,omitempty"`

	// Name is the generic name field.
	Name string `json:"name,omitempty"`

	// ISO2 is the ISO 3166-1 alpha-2 country code.
	ISO2 string `json:"ISO2,omitempty"`

	// NSI is the feature's native zone identifier, when the file
	// carries one.
	NSI string `json:"nsi,omitempty"`

	// Attributes attached by enrichment.

	// Slug is the normalized name used in navigation paths.
	Slug string `json:"slug,omitempty"`

	// Zone is the matched catalog record, or a synthesized stub when
	// no catalog entry matched.
	Zone *ZoneRecord `json:"zone,omitempty"`

	// Article is the fetched encyclopedia article as markdown. Set
	// asynchronously, at most once, never removed.
	Article string `json:"article,omitempty"`
}

// FirstName returns the first populated raw name source, or "".
// The order mirrors candidate-name derivation: nom, then name.
func (p *Properties) FirstName() string {
	if p.Nom != "" {
		return p.Nom
	}
	return p.Name
}
