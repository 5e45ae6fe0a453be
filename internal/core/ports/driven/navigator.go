package driven

// Navigator receives navigation requests when a feature is selected.
// The core builds the path (/europe/<slug> or /europe/belgium/<mode>/<slug>)
// but does not own routing; the hosting surface decides what a path means.
type Navigator interface {
	// Navigate requests navigation to path.
	Navigate(path string)
}
