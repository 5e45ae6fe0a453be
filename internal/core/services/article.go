package services

import (
	"context"
	"fmt"

	"github.com/fossabot/belgium/internal/core/domain"
	"github.com/fossabot/belgium/internal/core/ports/driven"
	"github.com/fossabot/belgium/internal/core/ports/driving"
	"github.com/fossabot/belgium/internal/logger"
)

// Ensure ArticleService implements the interface.
var _ driving.ArticleReader = (*ArticleService)(nil)

// ArticleService fetches encyclopedia extracts and converts them into
// display markdown. Scheduled fetches are fire-and-forget: a failure
// leaves the target feature without an article and is never surfaced
// to the rendering path.
type ArticleService struct {
	source     driven.ArticleSource
	normaliser driven.ExtractNormaliser
}

// NewArticleService creates a new article service.
func NewArticleService(source driven.ArticleSource, normaliser driven.ExtractNormaliser) *ArticleService {
	return &ArticleService{source: source, normaliser: normaliser}
}

// Read fetches the article titled title and returns it as markdown
// prefixed with a level-1 heading.
func (s *ArticleService) Read(ctx context.Context, title, heading string) (string, error) {
	extract, err := s.source.FetchExtract(ctx, title)
	if err != nil {
		return "", fmt.Errorf("fetch extract %q: %w", title, err)
	}
	article, err := s.normaliser.Normalise(ctx, extract)
	if err != nil {
		return "", fmt.Errorf("normalise extract %q: %w", title, err)
	}
	return "# " + heading + "\n\n" + article, nil
}

// Launch starts one goroutine per task. Each completion calls publish
// with its own target feature and composed markdown; failed fetches
// call nothing. Tasks target disjoint features, so completions never
// overwrite each other, and publish owns whatever serialisation the
// render state needs. No timeout, no retry, no cancellation: a late
// completion against a discarded view must be a safe no-op in publish.
func (s *ArticleService) Launch(ctx context.Context, tasks []ArticleTask, publish func(f *domain.Feature, article string)) {
	for _, task := range tasks {
		go func(task ArticleTask) {
			article, err := s.Read(ctx, task.Title, task.Heading)
			if err != nil {
				logger.Debug("article %q dropped: %v", task.Title, err)
				return
			}
			publish(task.Feature, article)
		}(task)
	}
}
