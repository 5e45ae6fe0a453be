package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fossabot/belgium/internal/core/domain"
)

var (
	zonesType string
	zonesJSON bool
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List the zone catalog",
	Long: `Lists the canonical zone records: countries, communities, regions,
provinces and municipalities, in catalog order (which is also the
name matcher's priority order).`,
	RunE: runZones,
}

func init() {
	zonesCmd.Flags().StringVarP(&zonesType, "type", "t", "", "filter by display mode (type prefix)")
	zonesCmd.Flags().BoolVar(&zonesJSON, "json", false, "output zones as JSON")
	rootCmd.AddCommand(zonesCmd)
}

func runZones(cmd *cobra.Command, _ []string) error {
	if appConfig == nil {
		return errors.New("cli not configured")
	}

	ctx := context.Background()
	zones, err := appConfig.Catalog.Zones(ctx, zonesType)
	if err != nil {
		return fmt.Errorf("list zones: %w", err)
	}

	if zonesJSON {
		data, err := json.MarshalIndent(zones, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal zones: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	for _, z := range zones {
		cmd.Printf("  %-12s %-10s %s", z.NSI, z.Type, z.Name.FR)
		if z.Name.NL != "" && z.Name.NL != z.Name.FR {
			cmd.Printf(" / %s", z.Name.NL)
		}
		if z.CEEAccession != "" {
			cmd.Printf("  (%s)", z.CEEAccession)
		}
		cmd.Println()
		printParent(cmd, ctx, z)
	}
	cmd.Printf("\n%d zones\n", len(zones))
	return nil
}

func printParent(cmd *cobra.Command, ctx context.Context, z domain.ZoneRecord) {
	parent, err := appConfig.Catalog.ParentOf(ctx, z.NSI)
	if err != nil {
		return
	}
	cmd.Printf("  %-12s %-10s ∟ %s\n", "", "", parent.Name.FR)
}
