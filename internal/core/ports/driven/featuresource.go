package driven

import (
	"context"

	"github.com/fossabot/belgium/internal/core/domain"
)

// FeatureSource fetches the raw feature collection for a display mode.
// The conventional location is <mode>.geo.json under the source root.
type FeatureSource interface {
	// FetchCollection fetches and decodes the collection for mode.
	// Returns domain.ErrNoFeatureFile for modes without a file and
	// wraps domain.ErrFetchFailed for transport or decode failures.
	FetchCollection(ctx context.Context, mode domain.MapMode) (*domain.FeatureCollection, error)
}

// FeatureWatcher signals when the feature file behind a mode changes,
// so a live view can reload its collection. Optional.
type FeatureWatcher interface {
	// Watch emits the mode whose file changed until ctx is cancelled.
	Watch(ctx context.Context, mode domain.MapMode) (<-chan domain.MapMode, error)
}
