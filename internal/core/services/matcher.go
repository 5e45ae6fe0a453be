package services

import (
	"strings"

	"github.com/fossabot/belgium/internal/core/domain"
)

// Matcher finds the catalog zone behind a feature's display names.
// It is stateless; the catalog is passed per call so the caller keeps
// control of catalog order, which doubles as match priority.
type Matcher struct{}

// NewMatcher creates a new name matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Match returns the first zone, in catalog order, matched by any of the
// candidate names under the given type filter. A zone is a candidate
// only when its type tag is a prefix of typeFilter, so the plural
// display mode "communes" selects zones tagged "commune". A name
// matches on exact equality with either locale name or on slugified
// equality with either. The boolean is false when nothing matches;
// that is not an error.
func (m *Matcher) Match(names []string, typeFilter string, zones []domain.ZoneRecord) (domain.ZoneRecord, bool) {
	for _, zone := range zones {
		if !strings.HasPrefix(typeFilter, zone.Type) {
			continue
		}
		slugFR := Slugify(zone.Name.FR)
		slugNL := Slugify(zone.Name.NL)
		for _, name := range names {
			if name == zone.Name.FR || name == zone.Name.NL {
				return zone, true
			}
			slug := Slugify(name)
			if slug == "" {
				continue
			}
			if slug == slugFR || slug == slugNL {
				return zone, true
			}
		}
	}
	return domain.ZoneRecord{}, false
}

// CandidateNames derives the names to match a feature under. The first
// available source wins and the rest are never consulted: the
// pipe-delimited alternate-name list, then the municipal name, then the
// generic name, then the country name looked up by ISO code.
func (m *Matcher) CandidateNames(f *domain.Feature, countries map[string]domain.CountryRecord) []string {
	p := f.Properties
	if p == nil {
		return nil
	}
	if p.Varname1 != "" {
		return strings.Split(p.Varname1, "|")
	}
	if p.Nom != "" {
		return []string{p.Nom}
	}
	if p.Name != "" {
		return []string{p.Name}
	}
	if country, ok := countries[p.ISO2]; ok {
		return []string{country.Name}
	}
	return nil
}
