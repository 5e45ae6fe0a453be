// Package geojson implements the FeatureSource and FeatureWatcher
// ports over <mode>.geo.json files, served from a local data directory
// or an HTTP base URL.
package geojson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/fossabot/belgium/internal/core/domain"
	"github.com/fossabot/belgium/internal/core/ports/driven"
	"github.com/fossabot/belgium/internal/logger"
)

// Ensure Source implements the interfaces.
var (
	_ driven.FeatureSource  = (*Source)(nil)
	_ driven.FeatureWatcher = (*Source)(nil)
)

// Source reads feature collections by the <mode>.geo.json convention.
// The root is either a directory path or an http(s) base URL.
type Source struct {
	root       string
	httpClient *http.Client
}

// NewSource creates a source rooted at root.
func NewSource(root string) *Source {
	return &Source{
		root:       root,
		httpClient: &http.Client{},
	}
}

func (s *Source) remote() bool {
	return strings.HasPrefix(s.root, "http://") || strings.HasPrefix(s.root, "https://")
}

func fileName(mode domain.MapMode) string {
	return string(mode) + ".geo.json"
}

// FetchCollection fetches and decodes the collection for mode.
func (s *Source) FetchCollection(ctx context.Context, mode domain.MapMode) (*domain.FeatureCollection, error) {
	if !mode.HasFeatureFile() {
		return nil, fmt.Errorf("%s: %w", mode, domain.ErrNoFeatureFile)
	}

	var (
		raw []byte
		err error
	)
	if s.remote() {
		raw, err = s.fetchHTTP(ctx, fileName(mode))
	} else {
		raw, err = os.ReadFile(filepath.Join(s.root, fileName(mode)))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}

	var fc domain.FeatureCollection
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", domain.ErrFetchFailed, fileName(mode), err)
	}
	return &fc, nil
}

func (s *Source) fetchHTTP(ctx context.Context, name string) ([]byte, error) {
	u := strings.TrimSuffix(s.root, "/") + "/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d for %s", resp.StatusCode, u)
	}
	return io.ReadAll(resp.Body)
}

// Watch emits mode whenever its feature file changes on disk. Only
// available for directory roots.
func (s *Source) Watch(ctx context.Context, mode domain.MapMode) (<-chan domain.MapMode, error) {
	if s.remote() {
		return nil, fmt.Errorf("watch: remote root %q: %w", s.root, domain.ErrInvalidInput)
	}
	if !mode.HasFeatureFile() {
		return nil, fmt.Errorf("watch %s: %w", mode, domain.ErrNoFeatureFile)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if err := watcher.Add(s.root); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", s.root, err)
	}

	out := make(chan domain.MapMode)
	target := fileName(mode)
	go func() {
		defer close(out)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				select {
				case out <- mode:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("feature watch: %v", err)
			}
		}
	}()
	return out, nil
}
