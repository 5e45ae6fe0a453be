// Command belgium is the composition root: it builds the driven
// adapters, wires the core services and hands them to the CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fossabot/belgium/internal/adapters/driven/catalog"
	configfile "github.com/fossabot/belgium/internal/adapters/driven/config/file"
	"github.com/fossabot/belgium/internal/adapters/driven/geojson"
	"github.com/fossabot/belgium/internal/adapters/driving/cli"
	"github.com/fossabot/belgium/internal/connectors/wikipedia"
	"github.com/fossabot/belgium/internal/core/domain"
	"github.com/fossabot/belgium/internal/core/ports/driven"
	"github.com/fossabot/belgium/internal/core/services"
	"github.com/fossabot/belgium/internal/normalisers/wikitext"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Static catalogs, loaded once and shared read-only.
	static := catalog.NewStatic()
	ctx := context.Background()
	zones, err := static.Zones(ctx)
	if err != nil {
		return err
	}
	countries, err := static.Countries(ctx)
	if err != nil {
		return err
	}
	index := services.NewZoneIndex(zones)

	dataRoot := cfg.GetString(configfile.KeyDataRoot)
	if dataRoot == "" {
		dataRoot = "data"
	}
	source := geojson.NewSource(dataRoot)

	articles := services.NewArticleService(
		wikipedia.NewClient(cfg.GetString(configfile.KeyWikipediaEndpoint)),
		wikitext.New(),
	)
	enricher := services.NewEnricher(zones, countries)

	cli.SetConfig(&cli.Config{
		Catalog:  services.NewCatalog(zones, index),
		Articles: articles,
		Style:    services.NewStyleResolver(index),
		NewMapView: func(mode domain.MapMode, navigator driven.Navigator) *services.MapView {
			return services.NewMapView(mode, source, enricher, articles, navigator)
		},
		Watcher: source,
	})
	return cli.Execute()
}
