package driving

import (
	"context"

	"github.com/fossabot/belgium/internal/core/domain"
)

// CatalogService exposes read access to the zone catalog for external
// actors (CLI listing, TUI zone card).
type CatalogService interface {
	// Zones returns all zones in catalog order, optionally filtered by
	// type prefix. Empty filter returns everything.
	Zones(ctx context.Context, typeFilter string) ([]domain.ZoneRecord, error)

	// ZoneByNSI returns the zone with the given natural identifier.
	// Returns domain.ErrNotFound when absent.
	ZoneByNSI(ctx context.Context, nsi string) (domain.ZoneRecord, error)

	// ParentOf returns the zone that declares nsi among its children.
	// Returns domain.ErrNotFound when no zone claims it.
	ParentOf(ctx context.Context, nsi string) (domain.ZoneRecord, error)
}

// ArticleReader fetches and converts one article synchronously, for
// surfaces that want the text directly rather than through the render
// state (the article CLI command).
type ArticleReader interface {
	// Read returns the composed markdown for the article titled title,
	// headed by heading.
	Read(ctx context.Context, title, heading string) (string, error)
}
