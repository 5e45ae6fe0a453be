package geojson

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fossabot/belgium/internal/core/domain"
)

const sampleCollection = `{
	"type": "FeatureCollection",
	"features": [
		{"type": "Feature", "properties": {"name": "Belgique", "ISO2": "BE"}, "geometry": {"type": "Point", "coordinates": [4.47, 50.5]}}
	]
}`

func TestFetchCollection_FromDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "europe.geo.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleCollection), 0o644))

	source := NewSource(dir)
	fc, err := source.FetchCollection(context.Background(), domain.ModeEurope)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "Belgique", fc.Features[0].Properties.Name)
	assert.Equal(t, "BE", fc.Features[0].Properties.ISO2)
	assert.NotEmpty(t, fc.Features[0].Geometry, "geometry is carried through opaquely")
}

func TestFetchCollection_FromHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/communes.geo.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(sampleCollection))
	}))
	defer server.Close()

	source := NewSource(server.URL)
	fc, err := source.FetchCollection(context.Background(), domain.ModeCommunes)
	require.NoError(t, err)
	assert.Len(t, fc.Features, 1)
}

func TestFetchCollection_MissingFile(t *testing.T) {
	source := NewSource(t.TempDir())
	_, err := source.FetchCollection(context.Background(), domain.ModeRegions)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFetchCollection_ModeWithoutFile(t *testing.T) {
	source := NewSource(t.TempDir())
	_, err := source.FetchCollection(context.Background(), domain.ModeCommunautes)
	assert.ErrorIs(t, err, domain.ErrNoFeatureFile)
}

func TestFetchCollection_DecodeFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "europe.geo.json"), []byte("{broken"), 0o644))

	source := NewSource(dir)
	_, err := source.FetchCollection(context.Background(), domain.ModeEurope)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestWatch_EmitsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "provinces.geo.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleCollection), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := NewSource(dir)
	changes, err := source.Watch(ctx, domain.ModeProvinces)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(sampleCollection), 0o644))

	select {
	case mode := <-changes:
		assert.Equal(t, domain.ModeProvinces, mode)
	case <-time.After(3 * time.Second):
		t.Fatal("no change event received")
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "provinces.geo.json"), []byte(sampleCollection), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := NewSource(dir)
	changes, err := source.Watch(ctx, domain.ModeProvinces)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "regions.geo.json"), []byte(sampleCollection), 0o644))

	select {
	case mode := <-changes:
		t.Fatalf("unexpected event for %s", mode)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatch_RejectsRemoteRoot(t *testing.T) {
	source := NewSource("https://example.org/data")
	_, err := source.Watch(context.Background(), domain.ModeEurope)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
