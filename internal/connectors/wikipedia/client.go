package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/fossabot/belgium/internal/core/domain"
	"github.com/fossabot/belgium/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.ArticleSource = (*Client)(nil)

const (
	// DefaultEndpoint is the French Wikipedia action API.
	DefaultEndpoint = "https://fr.wikipedia.org/w/api.php"

	// CourtesyRate is the proactive throttle on extract requests.
	// The API tolerates far more, but one view can schedule dozens of
	// fetches at once and they all hit a public endpoint.
	CourtesyRate = 5

	// CourtesyBurst allows a small initial burst when a view loads.
	CourtesyBurst = 5
)

// Client fetches plain-text article extracts. Requests carry no
// timeout and are never retried; a slow or failed fetch only delays or
// drops one article.
type Client struct {
	endpoint   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client against endpoint. An empty endpoint
// selects the French Wikipedia.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(CourtesyRate), CourtesyBurst),
	}
}

// queryResponse mirrors the slice of the API response we consume:
// query.pages is a mapping of opaque page id to page.
type queryResponse struct {
	Query struct {
		Pages map[string]struct {
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

// FetchExtract returns the plain-text extract for title.
func (c *Client) FetchExtract(ctx context.Context, title string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryURL(title), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", domain.ErrFetchFailed, resp.StatusCode)
	}

	var decoded queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}

	// Exactly one page is expected per query; the key is opaque.
	for _, page := range decoded.Query.Pages {
		if page.Extract == "" {
			break
		}
		return page.Extract, nil
	}
	return "", fmt.Errorf("article %q: %w", title, domain.ErrNoExtract)
}

// queryURL builds the extracts query for title.
func (c *Client) queryURL(title string) string {
	params := url.Values{
		"origin":      {"*"},
		"format":      {"json"},
		"action":      {"query"},
		"prop":        {"extracts"},
		"explaintext": {"1"},
		"redirects":   {"1"},
		"titles":      {title},
	}
	return c.endpoint + "?" + params.Encode()
}
