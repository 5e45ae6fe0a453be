package driven

import "context"

// ArticleSource fetches the plain-text extract of an encyclopedia
// article by title. Implementations follow redirects and return the
// extract of the single page the endpoint answers with.
type ArticleSource interface {
	// FetchExtract returns the plain-text extract for title.
	// Wraps domain.ErrFetchFailed on transport or decode failures and
	// domain.ErrNoExtract when the response carries no extract.
	FetchExtract(ctx context.Context, title string) (string, error)
}

// ExtractNormaliser converts a plain-text encyclopedia extract into
// display markdown.
type ExtractNormaliser interface {
	// Normalise converts extract to markdown.
	Normalise(ctx context.Context, extract string) (string, error)
}
