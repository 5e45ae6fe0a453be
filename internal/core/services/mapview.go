package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fossabot/belgium/internal/core/domain"
	"github.com/fossabot/belgium/internal/core/ports/driven"
	"github.com/fossabot/belgium/internal/core/ports/driving"
	"github.com/fossabot/belgium/internal/logger"
)

// Ensure MapView implements the interface.
var _ driving.MapViewService = (*MapView)(nil)

const (
	// Initial viewport, centred on Belgium.
	defaultLat  = 50.5039
	defaultLng  = 4.4699
	defaultZoom = 8

	// The country overview uses a fixed wide zoom.
	europeZoom = 4

	// resizeDebounce is how long Resize waits for the viewport to
	// settle before applying a zoom change.
	resizeDebounce = 500 * time.Millisecond
)

// MapView owns the render state of one map view. All state writes are
// serialised through its mutex: the initial enrichment pass, each
// article completion, selection changes and resizes each replace the
// state as a whole and notify subscribers with a snapshot.
type MapView struct {
	mode      domain.MapMode
	source    driven.FeatureSource
	enricher  *Enricher
	articles  *ArticleService
	navigator driven.Navigator

	mu    sync.RWMutex
	state domain.RenderState
	subs  map[string]func(domain.RenderState)

	resizeMu    sync.Mutex
	resizeTimer *time.Timer
}

// NewMapView creates a view for the given mode. The navigator may be
// nil when the hosting surface has no routing.
func NewMapView(mode domain.MapMode, source driven.FeatureSource, enricher *Enricher, articles *ArticleService, navigator driven.Navigator) *MapView {
	zoom := defaultZoom
	if mode == domain.ModeEurope {
		zoom = europeZoom
	}
	return &MapView{
		mode:      mode,
		source:    source,
		enricher:  enricher,
		articles:  articles,
		navigator: navigator,
		state: domain.RenderState{
			Mode: mode,
			Zoom: zoom,
			Lat:  defaultLat,
			Lng:  defaultLng,
		},
		subs: make(map[string]func(domain.RenderState)),
	}
}

// Load fetches the feature collection for the view's mode, enriches it
// and installs the result with its initial selection. Article fetches
// are launched only after the enriched state is installed, so the
// synchronous pass always completes before the first article resolves.
// Modes without a feature file load into an empty state without error;
// a failed fetch leaves the view without a map layer.
func (v *MapView) Load(ctx context.Context, selectedSlug string) error {
	if !v.mode.HasFeatureFile() {
		return nil
	}

	fc, err := v.source.FetchCollection(ctx, v.mode)
	if err != nil {
		logger.Warn("collection %s not loaded: %v", v.mode, err)
		return fmt.Errorf("load %s: %w", v.mode, err)
	}

	selected, tasks := v.enricher.Enrich(fc, v.mode, Slugify(selectedSlug))

	v.mu.Lock()
	v.state.GeoJSON = fc
	v.state.Selected = selected
	snapshot := v.state
	v.mu.Unlock()
	v.notify(snapshot)

	logger.Info("loaded %d features for %s, %d article fetches scheduled",
		len(fc.Features), v.mode, len(tasks))

	// In-flight fetches survive the caller's context: discarding the
	// view must not cancel them, their late completions are no-ops.
	v.articles.Launch(context.WithoutCancel(ctx), tasks, v.onArticleResolved)
	return nil
}

// onArticleResolved publishes one fetched article onto its feature.
// Each completion patches a disjoint feature, so concurrent
// completions never lose one another's articles.
func (v *MapView) onArticleResolved(f *domain.Feature, article string) {
	v.mu.Lock()
	if f.Properties == nil {
		v.mu.Unlock()
		return
	}
	f.Properties.Article = article
	snapshot := v.state
	v.mu.Unlock()
	v.notify(snapshot)
}

// Select makes the feature carrying slug the selection and emits a
// navigation request. Slugs not present in the collection are ignored.
func (v *MapView) Select(slug string) {
	v.mu.Lock()
	var target *domain.Feature
	if v.state.GeoJSON != nil {
		for _, f := range v.state.GeoJSON.Features {
			if f.Properties != nil && f.Properties.Slug == slug {
				target = f
				break
			}
		}
	}
	if target == nil {
		v.mu.Unlock()
		return
	}
	v.state.Selected = target
	snapshot := v.state
	v.mu.Unlock()
	v.notify(snapshot)

	if v.navigator != nil {
		v.navigator.Navigate(v.navPath(slug))
	}
}

// navPath encodes the mode and slug into a navigation path.
func (v *MapView) navPath(slug string) string {
	if v.mode == domain.ModeEurope {
		return "/europe/" + slug
	}
	return "/europe/belgium/" + string(v.mode) + "/" + slug
}

// Resize schedules a zoom recomputation for the given viewport width.
// Calls are debounced; only the width of the last call within the
// window is applied. The country overview keeps its fixed zoom.
func (v *MapView) Resize(width int) {
	v.resizeMu.Lock()
	defer v.resizeMu.Unlock()
	if v.resizeTimer != nil {
		v.resizeTimer.Stop()
	}
	v.resizeTimer = time.AfterFunc(resizeDebounce, func() {
		v.applyResize(width)
	})
}

func (v *MapView) applyResize(width int) {
	if v.mode == domain.ModeEurope {
		return
	}
	zoom := defaultZoom
	switch {
	case width < 500:
		zoom = 6
	case width < 700:
		zoom = 7
	}

	v.mu.Lock()
	if v.state.Zoom == zoom {
		v.mu.Unlock()
		return
	}
	v.state.Zoom = zoom
	snapshot := v.state
	v.mu.Unlock()
	v.notify(snapshot)
}

// State returns a snapshot of the current render state.
func (v *MapView) State() domain.RenderState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// Subscribe registers fn for state snapshots after every transition.
func (v *MapView) Subscribe(fn func(domain.RenderState)) string {
	id := uuid.New().String()
	v.mu.Lock()
	v.subs[id] = fn
	v.mu.Unlock()
	return id
}

// Unsubscribe removes a subscription. Unknown ids are ignored.
func (v *MapView) Unsubscribe(id string) {
	v.mu.Lock()
	delete(v.subs, id)
	v.mu.Unlock()
}

// notify delivers a snapshot to every subscriber.
func (v *MapView) notify(snapshot domain.RenderState) {
	v.mu.RLock()
	fns := make([]func(domain.RenderState), 0, len(v.subs))
	for _, fn := range v.subs {
		fns = append(fns, fn)
	}
	v.mu.RUnlock()
	for _, fn := range fns {
		fn(snapshot)
	}
}

// AutoReload reloads the collection whenever the watcher reports the
// mode's feature file changed, keeping the current selection. Runs
// until ctx is cancelled. Optional; callers without a watcher skip it.
func (v *MapView) AutoReload(ctx context.Context, watcher driven.FeatureWatcher) error {
	changes, err := watcher.Watch(ctx, v.mode)
	if err != nil {
		return fmt.Errorf("watch %s: %w", v.mode, err)
	}
	go func() {
		for range changes {
			slug := ""
			if s := v.State(); s.Selected != nil && s.Selected.Properties != nil {
				slug = s.Selected.Properties.Slug
			}
			if err := v.Load(ctx, slug); err != nil {
				logger.Warn("reload %s: %v", v.mode, err)
			}
		}
	}()
	return nil
}
