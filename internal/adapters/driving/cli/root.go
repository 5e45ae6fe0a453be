// Package cli implements the cobra command surface of the belgium
// binary. Commands only talk to core services through driving ports;
// the composition root in cmd/belgium injects them via SetConfig.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/fossabot/belgium/internal/core/domain"
	"github.com/fossabot/belgium/internal/core/ports/driven"
	"github.com/fossabot/belgium/internal/core/ports/driving"
	"github.com/fossabot/belgium/internal/core/services"
	"github.com/fossabot/belgium/internal/logger"
)

// version is the build version, overridden at link time.
var version = "dev"

// Config bundles everything the commands need. The map view is a
// factory because each invocation builds a fresh view for its mode.
type Config struct {
	// Catalog answers zone queries.
	Catalog driving.CatalogService

	// Articles reads single articles synchronously.
	Articles driving.ArticleReader

	// Style resolves presentation styles.
	Style driving.StyleResolver

	// NewMapView builds a view for a mode with the given navigator.
	NewMapView func(mode domain.MapMode, navigator driven.Navigator) *services.MapView

	// Watcher reloads live views on feature-file changes. Optional.
	Watcher driven.FeatureWatcher
}

// appConfig holds the injected configuration.
var appConfig *Config

// SetConfig injects the wired services. Must be called before Execute.
func SetConfig(c *Config) {
	appConfig = c
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "belgium",
	Short: "Interactive map of the zones of Belgium and Europe",
	Long: `Belgium renders an interactive map of geographic zones: the countries
of the union, the Belgian communities, regions, provinces and
municipalities. Each feature is matched to a canonical zone record,
enriched with country metadata and, where available, a Wikipedia
article.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
