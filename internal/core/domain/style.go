package domain

// MapMode selects which layer a view displays. The mode doubles as the
// feature-file name (<mode>.geo.json) and, by prefix, as the zone-type
// filter for name matching.
type MapMode string

const (
	// ModeEurope is the country overview of the union.
	ModeEurope MapMode = "europe"

	// ModeRegions shows the Belgian regions.
	ModeRegions MapMode = "regions"

	// ModeProvinces shows the Belgian provinces.
	ModeProvinces MapMode = "provinces"

	// ModeCommunautes shows the language communities. This mode has no
	// feature file; the view renders a static overlay instead.
	ModeCommunautes MapMode = "communautes"

	// ModeCommunes shows the municipality layer.
	ModeCommunes MapMode = "communes"
)

// HasFeatureFile reports whether a <mode>.geo.json file exists for the
// mode. The communautés overlay is image-only.
func (m MapMode) HasFeatureFile() bool {
	return m != ModeCommunautes
}

// Style is the resolved presentation of one feature on the map. Color
// values are passed to the rendering surface verbatim; they are never
// validated, so a misconfigured color string renders as-is.
type Style struct {
	FillColor   string  `json:"fillColor"`
	Color       string  `json:"color"`
	Weight      int     `json:"weight"`
	Opacity     float64 `json:"opacity"`
	DashArray   string  `json:"dashArray"`
	FillOpacity float64 `json:"fillOpacity"`
}
