package driving

import (
	"context"

	"github.com/fossabot/belgium/internal/core/domain"
)

// MapViewService owns the render state of one map view and exposes the
// transitions a rendering surface drives.
type MapViewService interface {
	// Load fetches the feature collection for the view's mode, runs
	// enrichment, stores the enriched collection and initial selection,
	// and schedules article fetches. Modes without a feature file load
	// into an empty state without error.
	Load(ctx context.Context, selectedSlug string) error

	// Select makes the feature with the given slug the selection and
	// emits a navigation request. Unknown slugs are ignored.
	Select(slug string)

	// Resize recomputes the zoom level for a viewport width. Calls are
	// debounced; only the last width within the window is applied.
	Resize(width int)

	// State returns a snapshot of the current render state.
	State() domain.RenderState

	// Subscribe registers fn to receive state snapshots after every
	// transition. The returned id cancels the subscription via
	// Unsubscribe.
	Subscribe(fn func(domain.RenderState)) string

	// Unsubscribe removes a subscription.
	Unsubscribe(id string)
}

// StyleResolver maps one feature plus interaction state to its visual
// style. Pure; re-evaluated on every render.
type StyleResolver interface {
	// Resolve returns the style for f under mode. selected indicates
	// the feature is the current selection.
	Resolve(f *domain.Feature, mode domain.MapMode, selected bool) domain.Style
}
