// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - FeatureSource: Fetches a feature collection for a display mode
//   - ZoneCatalog: Loads the static zone catalog
//   - CountryCatalog: Loads the static country catalog
//   - ArticleSource: Fetches encyclopedia extracts
//   - ExtractNormaliser: Converts extracts to display markdown
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Navigator: Receives navigation requests on feature clicks
//   - FeatureWatcher: Signals feature-file changes for live reload
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
