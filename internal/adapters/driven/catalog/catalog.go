// Package catalog implements the ZoneCatalog and CountryCatalog ports
// over static JSON embedded in the binary. Both catalogs are decoded
// once, at first use, and are read-only afterwards.
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/fossabot/belgium/internal/core/domain"
	"github.com/fossabot/belgium/internal/core/ports/driven"
)

// Ensure Static implements the interfaces.
var (
	_ driven.ZoneCatalog    = (*Static)(nil)
	_ driven.CountryCatalog = (*Static)(nil)
)

//go:embed zones.json
var zonesJSON []byte

//go:embed countries.json
var countriesJSON []byte

// Static serves the embedded catalogs. Catalog order in zones.json is
// meaningful: the matcher treats it as priority order.
type Static struct {
	zonesOnce sync.Once
	zones     []domain.ZoneRecord
	zonesErr  error

	countriesOnce sync.Once
	countries     map[string]domain.CountryRecord
	countriesErr  error
}

// NewStatic creates the embedded catalog adapter.
func NewStatic() *Static {
	return &Static{}
}

// Zones returns all zone records in catalog order.
func (s *Static) Zones(_ context.Context) ([]domain.ZoneRecord, error) {
	s.zonesOnce.Do(func() {
		if err := json.Unmarshal(zonesJSON, &s.zones); err != nil {
			s.zonesErr = fmt.Errorf("decode zone catalog: %w", err)
		}
	})
	return s.zones, s.zonesErr
}

// Countries returns the country records keyed by ISO2 code.
func (s *Static) Countries(_ context.Context) (map[string]domain.CountryRecord, error) {
	s.countriesOnce.Do(func() {
		if err := json.Unmarshal(countriesJSON, &s.countries); err != nil {
			s.countriesErr = fmt.Errorf("decode country catalog: %w", err)
		}
	})
	return s.countries, s.countriesErr
}
