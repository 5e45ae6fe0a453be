package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fossabot/belgium/internal/core/domain"
)

func TestMatch_CatalogOrderIsPriority(t *testing.T) {
	matcher := NewMatcher()
	zones := []domain.ZoneRecord{
		{NSI: "A", Type: "country", Name: domain.ZoneName{FR: "Belgique", NL: "België"}},
		{NSI: "B", Type: "country", Name: domain.ZoneName{FR: "Belgique", NL: "Belgie"}},
	}

	got, ok := matcher.Match([]string{"Belgique"}, "country", zones)
	require.True(t, ok)
	assert.Equal(t, "A", got.NSI, "the first zone in catalog order wins")
}

func TestMatch_ExactFrenchAndDutch(t *testing.T) {
	matcher := NewMatcher()
	zones := []domain.ZoneRecord{
		{NSI: "BE", Type: "europe", Name: domain.ZoneName{FR: "Belgique", NL: "België"}},
	}

	got, ok := matcher.Match([]string{"Belgique"}, "europe", zones)
	require.True(t, ok)
	assert.Equal(t, "BE", got.NSI)

	got, ok = matcher.Match([]string{"België"}, "europe", zones)
	require.True(t, ok)
	assert.Equal(t, "BE", got.NSI)
}

func TestMatch_SlugifiedFallback(t *testing.T) {
	matcher := NewMatcher()
	zones := []domain.ZoneRecord{
		{NSI: "BE", Type: "europe", Name: domain.ZoneName{FR: "Belgique", NL: "België"}},
	}

	// Exact comparison fails, slugified comparison succeeds.
	got, ok := matcher.Match([]string{"BELGIQUE"}, "europe", zones)
	require.True(t, ok)
	assert.Equal(t, "BE", got.NSI)

	// Same through the accent-stripped Dutch name.
	got, ok = matcher.Match([]string{"belgie"}, "europe", zones)
	require.True(t, ok)
	assert.Equal(t, "BE", got.NSI)
}

func TestMatch_TypeFilterIsPrefixOfMode(t *testing.T) {
	matcher := NewMatcher()
	zones := []domain.ZoneRecord{
		{NSI: "62063", Type: domain.ZoneTypeCommune, Name: domain.ZoneName{FR: "Liège", NL: "Luik"}},
		{NSI: "60000", Type: domain.ZoneTypeProvince, Name: domain.ZoneName{FR: "Liège", NL: "Luik"}},
	}

	// The plural mode selects the singular commune tag, not the
	// province, even though both zones carry the same name.
	got, ok := matcher.Match([]string{"Liège"}, "communes", zones)
	require.True(t, ok)
	assert.Equal(t, "62063", got.NSI)

	got, ok = matcher.Match([]string{"Liège"}, "provinces", zones)
	require.True(t, ok)
	assert.Equal(t, "60000", got.NSI)
}

func TestMatch_NotFoundIsNotAnError(t *testing.T) {
	matcher := NewMatcher()
	zones := []domain.ZoneRecord{
		{NSI: "BE", Type: "europe", Name: domain.ZoneName{FR: "Belgique"}},
	}

	_, ok := matcher.Match([]string{"Atlantide"}, "europe", zones)
	assert.False(t, ok)

	// Right name, wrong type filter.
	_, ok = matcher.Match([]string{"Belgique"}, "communes", zones)
	assert.False(t, ok)
}

func TestMatch_PunctuationOnlyNameNeverMatchesEmptyDutch(t *testing.T) {
	matcher := NewMatcher()
	zones := []domain.ZoneRecord{
		{NSI: "X", Type: "europe", Name: domain.ZoneName{FR: "Belgique"}},
	}

	_, ok := matcher.Match([]string{"--"}, "europe", zones)
	assert.False(t, ok, "an empty slug must not match the empty Dutch name")
}

func TestCandidateNames_FirstSourceWins(t *testing.T) {
	matcher := NewMatcher()
	countries := map[string]domain.CountryRecord{
		"BE": {Name: "Belgique", Capital: "Bruxelles"},
	}

	tests := []struct {
		name  string
		props *domain.Properties
		want  []string
	}{
		{
			"pipe-delimited alternates win",
			&domain.Properties{Varname1: "Bélgica|Belgium|Belgien", Nom: "ignored", Name: "ignored", ISO2: "BE"},
			[]string{"Bélgica", "Belgium", "Belgien"},
		},
		{
			"municipal name next",
			&domain.Properties{Nom: "Liège", Name: "ignored", ISO2: "BE"},
			[]string{"Liège"},
		},
		{
			"generic name next",
			&domain.Properties{Name: "Gand", ISO2: "BE"},
			[]string{"Gand"},
		},
		{
			"country lookup last",
			&domain.Properties{ISO2: "BE"},
			[]string{"Belgique"},
		},
		{
			"unknown country yields nothing",
			&domain.Properties{ISO2: "XX"},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &domain.Feature{Properties: tt.props}
			assert.Equal(t, tt.want, matcher.CandidateNames(f, countries))
		})
	}
}

func TestCandidateNames_NilProperties(t *testing.T) {
	matcher := NewMatcher()
	assert.Nil(t, matcher.CandidateNames(&domain.Feature{}, nil))
}
