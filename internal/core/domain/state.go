package domain

// RenderState is the full state of one map view. Transitions replace
// the state as a whole; consumers receive it as a value snapshot.
type RenderState struct {
	// Mode is the display mode. Immutable per view instance.
	Mode MapMode

	// GeoJSON is the enriched feature collection, nil until loaded
	// and nil forever if the collection fetch failed.
	GeoJSON *FeatureCollection

	// Selected points at the currently selected feature inside
	// GeoJSON. Nil only when GeoJSON is nil or empty; otherwise
	// exactly one feature is selected.
	Selected *Feature

	// Viewport.
	Zoom int
	Lat  float64
	Lng  float64
}
