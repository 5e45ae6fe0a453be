package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/fossabot/belgium/internal/core/domain"
	"github.com/fossabot/belgium/internal/core/ports/driving"
)

// Ensure Catalog implements the interface.
var _ driving.CatalogService = (*Catalog)(nil)

// Catalog exposes read access to the loaded zone catalog and its index
// to external actors.
type Catalog struct {
	zones []domain.ZoneRecord
	index *ZoneIndex
}

// NewCatalog creates a catalog service over the loaded zones and the
// shared index.
func NewCatalog(zones []domain.ZoneRecord, index *ZoneIndex) *Catalog {
	return &Catalog{zones: zones, index: index}
}

// Zones returns the zones in catalog order, optionally filtered by
// type prefix.
func (c *Catalog) Zones(_ context.Context, typeFilter string) ([]domain.ZoneRecord, error) {
	if typeFilter == "" {
		out := make([]domain.ZoneRecord, len(c.zones))
		copy(out, c.zones)
		return out, nil
	}
	var out []domain.ZoneRecord
	for _, z := range c.zones {
		if strings.HasPrefix(typeFilter, z.Type) {
			out = append(out, z)
		}
	}
	return out, nil
}

// ZoneByNSI returns the zone with the given natural identifier.
func (c *Catalog) ZoneByNSI(_ context.Context, nsi string) (domain.ZoneRecord, error) {
	z, ok := c.index.ByNSI(nsi)
	if !ok {
		return domain.ZoneRecord{}, fmt.Errorf("zone %q: %w", nsi, domain.ErrNotFound)
	}
	return z, nil
}

// ParentOf returns the zone claiming nsi among its children.
func (c *Catalog) ParentOf(_ context.Context, nsi string) (domain.ZoneRecord, error) {
	z, ok := c.index.ParentOf(nsi)
	if !ok {
		return domain.ZoneRecord{}, fmt.Errorf("parent of %q: %w", nsi, domain.ErrNotFound)
	}
	return z, nil
}
