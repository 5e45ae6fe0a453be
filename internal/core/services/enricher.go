package services

import (
	"github.com/fossabot/belgium/internal/core/domain"
	"github.com/fossabot/belgium/internal/logger"
)

// ArticleTask describes one article fetch scheduled during enrichment.
// Tasks are collected during the synchronous pass and launched by the
// caller afterwards, so enrichment always completes before the first
// article can resolve.
type ArticleTask struct {
	// Feature is the enrichment target the article belongs to.
	Feature *domain.Feature

	// Title is the encyclopedia article title declared by the zone.
	Title string

	// Heading is the level-1 heading prefixed to the converted text,
	// the zone's French display name.
	Heading string
}

// Enricher cross-references fetched features with the zone and country
// catalogs, attaching zone, slug and country metadata to each feature.
type Enricher struct {
	matcher   *Matcher
	zones     []domain.ZoneRecord
	countries map[string]domain.CountryRecord
}

// NewEnricher creates an enricher over the given catalogs. The zone
// slice order is preserved; it is the matcher's priority order.
func NewEnricher(zones []domain.ZoneRecord, countries map[string]domain.CountryRecord) *Enricher {
	return &Enricher{
		matcher:   NewMatcher(),
		zones:     zones,
		countries: countries,
	}
}

// Enrich mutates every feature of fc in place and returns the feature
// whose slug equals selectedSlug plus the article fetches to launch.
// When no feature carries the selected slug the first feature is
// selected, so a selection always exists when the collection is
// non-empty.
//
// Per feature: a properties bag is synthesized for bare geometries,
// candidate names are derived, the matcher runs under the mode's type
// filter, and the matched zone (or a stub built from the first
// candidate name) is attached together with the slug. Country metadata
// is merged by ISO code regardless of match outcome, so stub zones
// still carry country-level badges.
func (e *Enricher) Enrich(fc *domain.FeatureCollection, mode domain.MapMode, selectedSlug string) (*domain.Feature, []ArticleTask) {
	var selected *domain.Feature
	var tasks []ArticleTask

	for _, f := range fc.Features {
		if f.Properties == nil {
			f.Properties = &domain.Properties{Nom: f.Nom, Name: f.Nom}
		}

		names := e.matcher.CandidateNames(f, e.countries)
		if len(names) == 0 {
			logger.Warn("feature without any name source, skipping match")
			continue
		}

		zone, matched := e.matcher.Match(names, string(mode), e.zones)
		if matched {
			f.Properties.Slug = Slugify(zone.Name.FR)
		} else {
			// Stub zone: the feature stays rendered and clickable,
			// just without catalog metadata.
			zone = domain.ZoneRecord{
				Name: domain.ZoneName{FR: names[0]},
				NSI:  f.Properties.NSI,
				Code: f.Properties.ISO2,
			}
			f.Properties.Slug = Slugify(names[0])
		}

		// Each feature gets its own copy so country metadata merged
		// below never leaks into the shared catalog records.
		attached := zone
		if country, ok := e.countries[f.Properties.ISO2]; ok {
			attached.Capital = country.Capital
			attached.CEEAccession = country.CEEAccession
		}
		f.Properties.Zone = &attached

		if f.Properties.Slug == selectedSlug {
			selected = f
		}

		if matched && zone.Wikipedia != "" {
			tasks = append(tasks, ArticleTask{
				Feature: f,
				Title:   zone.Wikipedia,
				Heading: zone.Name.FR,
			})
		}
	}

	if selected == nil && len(fc.Features) > 0 {
		selected = fc.Features[0]
	}
	return selected, tasks
}
