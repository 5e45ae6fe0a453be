package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fossabot/belgium/internal/core/domain"
)

// fakeArticleSource serves canned extracts keyed by title.
type fakeArticleSource struct {
	mu       sync.Mutex
	extracts map[string]string
	err      error
	delay    time.Duration
}

func (s *fakeArticleSource) FetchExtract(_ context.Context, title string) (string, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	extract, ok := s.extracts[title]
	if !ok {
		return "", fmt.Errorf("article %q: %w", title, domain.ErrNoExtract)
	}
	return extract, nil
}

// passthroughNormaliser returns extracts unchanged.
type passthroughNormaliser struct{}

func (passthroughNormaliser) Normalise(_ context.Context, extract string) (string, error) {
	return extract, nil
}

func TestRead_ComposesHeadingAndBody(t *testing.T) {
	source := &fakeArticleSource{extracts: map[string]string{
		"Belgique": "La Belgique est un pays d'Europe de l'Ouest.",
	}}
	svc := NewArticleService(source, passthroughNormaliser{})

	got, err := svc.Read(context.Background(), "Belgique", "Belgique")
	require.NoError(t, err)
	assert.Equal(t, "# Belgique\n\nLa Belgique est un pays d'Europe de l'Ouest.", got)
}

func TestRead_SourceFailure(t *testing.T) {
	source := &fakeArticleSource{err: errors.New("boom")}
	svc := NewArticleService(source, passthroughNormaliser{})

	_, err := svc.Read(context.Background(), "Belgique", "Belgique")
	assert.Error(t, err)
}

func TestLaunch_PublishesPerFeature(t *testing.T) {
	source := &fakeArticleSource{extracts: map[string]string{
		"Belgique": "texte belge",
		"France":   "texte français",
	}}
	svc := NewArticleService(source, passthroughNormaliser{})

	be := &domain.Feature{Properties: &domain.Properties{Slug: "belgique"}}
	fr := &domain.Feature{Properties: &domain.Properties{Slug: "france"}}
	tasks := []ArticleTask{
		{Feature: be, Title: "Belgique", Heading: "Belgique"},
		{Feature: fr, Title: "France", Heading: "France"},
	}

	var mu sync.Mutex
	published := make(map[*domain.Feature]string)
	done := make(chan struct{}, len(tasks))

	svc.Launch(context.Background(), tasks, func(f *domain.Feature, article string) {
		mu.Lock()
		published[f] = article
		mu.Unlock()
		done <- struct{}{}
	})

	for range tasks {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("article fetch did not complete")
		}
	}

	// Each completion targets its own feature; neither overwrites the
	// other's text.
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "# Belgique\n\ntexte belge", published[be])
	assert.Equal(t, "# France\n\ntexte français", published[fr])
}

func TestLaunch_FailuresPublishNothing(t *testing.T) {
	source := &fakeArticleSource{extracts: map[string]string{}}
	svc := NewArticleService(source, passthroughNormaliser{})

	f := &domain.Feature{Properties: &domain.Properties{}}
	calls := make(chan struct{}, 1)
	svc.Launch(context.Background(), []ArticleTask{{Feature: f, Title: "Inconnu"}}, func(*domain.Feature, string) {
		calls <- struct{}{}
	})

	select {
	case <-calls:
		t.Fatal("publish must not be called on failure")
	case <-time.After(100 * time.Millisecond):
	}
}
