package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fossabot/belgium/internal/core/domain"
)

func featureWithZone(zone *domain.ZoneRecord) *domain.Feature {
	return &domain.Feature{Properties: &domain.Properties{Zone: zone}}
}

func TestResolve_EuropeAccessionColors(t *testing.T) {
	resolver := NewStyleResolver(NewZoneIndex(nil))

	tests := []struct {
		accession string
		wantFill  string
	}{
		{"founder", "#4CAF50"},
		{"1973", "#F57F17"},
		{"1986", "#42A5F5"},
		{"1995", "#304FFE"},
		{"2004", "#9FA8DA"},
		// The configured values are not validated: the 1981 and 2007
		// entries are literal typos and must pass through as-is.
		{"1981", "#zzzbad"},
		{"2007", "#badzzz"},
		// Years without a table entry fall back.
		{"2013", "#badbad"},
	}

	for _, tt := range tests {
		t.Run(tt.accession, func(t *testing.T) {
			f := featureWithZone(&domain.ZoneRecord{CEEAccession: tt.accession})
			style := resolver.Resolve(f, domain.ModeEurope, false)
			assert.Equal(t, tt.wantFill, style.FillColor)
			assert.Equal(t, "rgb(166, 219, 173)", style.Color)
		})
	}
}

func TestResolve_EuropeNonMember(t *testing.T) {
	resolver := NewStyleResolver(NewZoneIndex(nil))

	f := featureWithZone(&domain.ZoneRecord{NSI: "CH"})
	style := resolver.Resolve(f, domain.ModeEurope, false)

	assert.Equal(t, "#451263", style.FillColor)
	assert.Equal(t, "#631263", style.Color)
	assert.Equal(t, 2, style.Weight)
	assert.Equal(t, 0.7, style.Opacity)
	assert.Equal(t, "3", style.DashArray)
	assert.Equal(t, 0.6, style.FillOpacity)
}

func TestResolve_SelectionOverridesEverything(t *testing.T) {
	resolver := NewStyleResolver(NewZoneIndex(nil))
	f := featureWithZone(&domain.ZoneRecord{CEEAccession: "1973"})

	for _, mode := range []domain.MapMode{domain.ModeEurope, domain.ModeCommunes, domain.ModeRegions} {
		style := resolver.Resolve(f, mode, true)
		assert.Equal(t, "red", style.FillColor, "mode %s", mode)
		assert.Equal(t, "red", style.Color, "mode %s", mode)
	}
}

func TestResolve_CommunesParentColor(t *testing.T) {
	index := NewZoneIndex([]domain.ZoneRecord{
		{NSI: "03000", Type: domain.ZoneTypeRegion, Color: "#E53935", Children: []string{"62063"}},
		{NSI: "62063", Type: domain.ZoneTypeCommune},
	})
	resolver := NewStyleResolver(index)

	// A commune with a parent paints in the parent's declared color.
	f := featureWithZone(&domain.ZoneRecord{NSI: "62063"})
	style := resolver.Resolve(f, domain.ModeCommunes, false)
	assert.Equal(t, "#E53935", style.FillColor)
	assert.Equal(t, "#E53935", style.Color)

	// No parent in the index: neutral fallback.
	orphan := featureWithZone(&domain.ZoneRecord{NSI: "99999"})
	style = resolver.Resolve(orphan, domain.ModeCommunes, false)
	assert.Equal(t, "#ece7f2", style.FillColor)
}

func TestResolve_DefaultMode(t *testing.T) {
	resolver := NewStyleResolver(NewZoneIndex(nil))
	f := featureWithZone(&domain.ZoneRecord{NSI: "02000"})

	style := resolver.Resolve(f, domain.ModeRegions, false)
	assert.Equal(t, "#ece7f2", style.FillColor)
	assert.Equal(t, "blue", style.Color)
	assert.Equal(t, 1.0, style.Opacity)
	assert.Equal(t, 0.7, style.FillOpacity)
}

func TestResolve_NilZoneIsSteadyState(t *testing.T) {
	resolver := NewStyleResolver(NewZoneIndex(nil))

	// Absent optional fields are the steady state, not an error.
	style := resolver.Resolve(&domain.Feature{}, domain.ModeEurope, false)
	assert.Equal(t, "#451263", style.FillColor)

	style = resolver.Resolve(&domain.Feature{}, domain.ModeCommunes, false)
	assert.Equal(t, "#ece7f2", style.FillColor)
}
