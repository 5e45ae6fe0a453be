package tui

import (
	"errors"

	"github.com/fossabot/belgium/internal/core/ports/driving"
)

// Ports bundles the driving ports the TUI needs.
type Ports struct {
	// View is the map view controller for the launched mode.
	View driving.MapViewService

	// Style resolves per-feature presentation styles.
	Style driving.StyleResolver

	// Catalog answers zone card queries (parents, related zones).
	Catalog driving.CatalogService
}

// Validate checks that the required ports are present.
func (p *Ports) Validate() error {
	if p == nil {
		return errors.New("nil ports")
	}
	if p.View == nil {
		return errors.New("map view service is required")
	}
	if p.Style == nil {
		return errors.New("style resolver is required")
	}
	if p.Catalog == nil {
		return errors.New("catalog service is required")
	}
	return nil
}
