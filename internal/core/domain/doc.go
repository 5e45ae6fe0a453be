// Package domain defines the core business entities for the Belgium map.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ZoneRecord: A canonical geographic/administrative zone
//   - CountryRecord: Country metadata keyed by ISO code
//   - Feature: One geometry + properties record from a feature collection
//   - RenderState: The state of one map view
//   - Style: The resolved presentation style for one feature
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
