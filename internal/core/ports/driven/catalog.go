package driven

import (
	"context"

	"github.com/fossabot/belgium/internal/core/domain"
)

// ZoneCatalog loads the static zone catalog. Loaded once at startup;
// the returned slice order is significant: the matcher treats it as
// priority order.
type ZoneCatalog interface {
	// Zones returns all zone records in catalog order.
	Zones(ctx context.Context) ([]domain.ZoneRecord, error)
}

// CountryCatalog loads the static country catalog keyed by ISO 3166-1
// alpha-2 code. Loaded once at startup, read-only afterwards.
type CountryCatalog interface {
	// Countries returns the country records keyed by ISO2 code.
	Countries(ctx context.Context) (map[string]domain.CountryRecord, error)
}
