package services

import (
	"github.com/fossabot/belgium/internal/core/domain"
	"github.com/fossabot/belgium/internal/core/ports/driving"
)

// Ensure StyleResolver implements the interface.
var _ driving.StyleResolver = (*StyleResolver)(nil)

// Accent color applied to the selected feature in every mode.
const selectedColor = "red"

// countryColors maps an accession-year tag to a fill color on the
// country overview. Values are configuration, not validated colors:
// the rendering surface receives them verbatim, typos included.
var countryColors = map[string]string{
	"founder": "#4CAF50",
	"1973":    "#F57F17",
	"1981":    "#zzzbad",
	"1986":    "#42A5F5",
	"1995":    "#304FFE",
	"2004":    "#9FA8DA",
	"2007":    "#badzzz",
}

// unknownAccessionColor paints members whose accession tag has no
// table entry.
const unknownAccessionColor = "#badbad"

// StyleResolver derives the presentation style of a feature from the
// display mode, the zone attributes and the selection state. Stateless
// beyond the shared child-to-parent index; re-evaluated per render.
type StyleResolver struct {
	index *ZoneIndex
}

// NewStyleResolver creates a style resolver over the shared zone index.
func NewStyleResolver(index *ZoneIndex) *StyleResolver {
	return &StyleResolver{index: index}
}

// Resolve returns the style for f. The selected feature renders with
// the accent color in every mode; otherwise the country overview
// colors by accession year, the municipality layer by the parent
// zone's declared color, and any other mode by a fixed palette.
func (r *StyleResolver) Resolve(f *domain.Feature, mode domain.MapMode, selected bool) domain.Style {
	switch mode {
	case domain.ModeEurope:
		return r.europeStyle(f, selected)
	case domain.ModeCommunes:
		return r.communesStyle(f, selected)
	default:
		return r.defaultStyle(selected)
	}
}

func (r *StyleResolver) europeStyle(f *domain.Feature, selected bool) domain.Style {
	fill := "#451263"
	border := "#631263"
	if zone := featureZone(f); zone != nil && zone.IsCEE() {
		fill = countryColors[zone.CEEAccession]
		if fill == "" {
			fill = unknownAccessionColor
		}
		border = "rgb(166, 219, 173)"
	}
	if selected {
		fill = selectedColor
		border = selectedColor
	}
	return domain.Style{
		FillColor:   fill,
		Color:       border,
		Weight:      2,
		Opacity:     0.7,
		DashArray:   "3",
		FillOpacity: 0.6,
	}
}

func (r *StyleResolver) communesStyle(f *domain.Feature, selected bool) domain.Style {
	color := "#ece7f2"
	if zone := featureZone(f); zone != nil {
		if parent, ok := r.index.ParentOf(zone.NSI); ok {
			color = parent.Color
		}
	}
	if selected {
		color = selectedColor
	}
	return domain.Style{
		FillColor:   color,
		Color:       color,
		Weight:      2,
		Opacity:     0.7,
		DashArray:   "3",
		FillOpacity: 0.6,
	}
}

func (r *StyleResolver) defaultStyle(selected bool) domain.Style {
	fill := "#ece7f2"
	border := "blue"
	if selected {
		fill = selectedColor
		border = selectedColor
	}
	return domain.Style{
		FillColor:   fill,
		Color:       border,
		Weight:      2,
		Opacity:     1,
		DashArray:   "3",
		FillOpacity: 0.7,
	}
}

func featureZone(f *domain.Feature) *domain.ZoneRecord {
	if f == nil || f.Properties == nil {
		return nil
	}
	return f.Properties.Zone
}
