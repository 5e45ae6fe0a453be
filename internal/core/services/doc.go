// Package services implements the core feature-enrichment pipeline and
// the driving ports defined in internal/core/ports/driving.
//
// The pipeline, leaves first:
//
//   - Slugify: the one shared name normalization function
//   - ZoneIndex: lookup structures over the static zone catalog
//   - Matcher: fuzzy name matching against the catalog
//   - Enricher: per-feature zone/slug/country enrichment
//   - ArticleService: asynchronous article fetch and conversion
//   - StyleResolver: pure feature + state -> style mapping
//   - MapView: the state container composing all of the above
//
// Services depend on driven ports for I/O and on nothing else outside
// the domain package.
package services
