package services

import "github.com/fossabot/belgium/internal/core/domain"

// ZoneIndex holds the lookup structures derived from the zone catalog:
// records by natural identifier and child identifier to parent record.
// Built once during initialisation and shared read-only afterwards;
// consumers receive it by reference and never rebuild it per request.
type ZoneIndex struct {
	byNSI    map[string]domain.ZoneRecord
	parentOf map[string]domain.ZoneRecord
}

// NewZoneIndex builds the index from the catalog. Duplicate NSIs and a
// child claimed by two parents both resolve last-write-wins in catalog
// order; neither is validated.
func NewZoneIndex(zones []domain.ZoneRecord) *ZoneIndex {
	idx := &ZoneIndex{
		byNSI:    make(map[string]domain.ZoneRecord, len(zones)),
		parentOf: make(map[string]domain.ZoneRecord),
	}
	for _, z := range zones {
		idx.byNSI[z.NSI] = z
		for _, child := range z.Children {
			idx.parentOf[child] = z
		}
	}
	return idx
}

// ByNSI returns the zone with the given natural identifier.
func (idx *ZoneIndex) ByNSI(nsi string) (domain.ZoneRecord, bool) {
	z, ok := idx.byNSI[nsi]
	return z, ok
}

// ParentOf returns the zone that lists nsi among its children.
func (idx *ZoneIndex) ParentOf(nsi string) (domain.ZoneRecord, bool) {
	z, ok := idx.parentOf[nsi]
	return z, ok
}

// Len returns the number of indexed zones.
func (idx *ZoneIndex) Len() int {
	return len(idx.byNSI)
}
