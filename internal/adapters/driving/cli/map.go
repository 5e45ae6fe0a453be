package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fossabot/belgium/internal/adapters/driving/tui"
	"github.com/fossabot/belgium/internal/core/domain"
)

var (
	mapType  string
	mapZone  string
	mapWatch bool
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Launch the interactive map",
	Long: `Launch the interactive map for a display mode.

Modes:
  europe       country overview, coloured by accession year
  regions      the Belgian regions
  provinces    the Belgian provinces
  communautes  the language communities (static overlay, no features)
  communes     the municipality layer, coloured by parent zone

Selecting a feature navigates to /europe/<slug> or
/europe/belgium/<mode>/<slug>.`,
	RunE: runMap,
}

func init() {
	mapCmd.Flags().StringVarP(&mapType, "type", "t", string(domain.ModeEurope), "display mode")
	mapCmd.Flags().StringVarP(&mapZone, "zone", "z", "", "zone to preselect, by name or slug")
	mapCmd.Flags().BoolVar(&mapWatch, "watch", false, "reload when the feature file changes")
	rootCmd.AddCommand(mapCmd)
}

func parseMode(s string) (domain.MapMode, error) {
	switch mode := domain.MapMode(s); mode {
	case domain.ModeEurope, domain.ModeRegions, domain.ModeProvinces,
		domain.ModeCommunautes, domain.ModeCommunes:
		return mode, nil
	default:
		return "", fmt.Errorf("%q: %w", s, domain.ErrUnsupportedMode)
	}
}

func runMap(_ *cobra.Command, _ []string) error {
	if appConfig == nil {
		return errors.New("cli not configured")
	}
	mode, err := parseMode(mapType)
	if err != nil {
		return err
	}

	history := tui.NewHistory()
	view := appConfig.NewMapView(mode, history)
	app, err := tui.NewApp(&tui.Ports{
		View:    view,
		Style:   appConfig.Style,
		Catalog: appConfig.Catalog,
	}, mapZone, history)
	if err != nil {
		return err
	}

	if mapWatch && appConfig.Watcher != nil && mode.HasFeatureFile() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := view.AutoReload(ctx, appConfig.Watcher); err != nil {
			return fmt.Errorf("watch: %w", err)
		}
	}

	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
