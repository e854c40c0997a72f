package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"torrview/internal/domain"
)

// Client fetches one page of search results. Implementations must
// return records in the order the source ranked them.
type Client interface {
	Search(ctx context.Context, params Params) ([]domain.Torrent, error)
}

// HTTPClient talks to the search API over HTTP. The API takes the page
// as "p" and the query as "q" and answers with a JSON array of listings.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a client for the given API base URL.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Search fetches the page of results described by params.
func (c *HTTPClient) Search(ctx context.Context, params Params) ([]domain.Torrent, error) {
	q := url.Values{}
	q.Set("p", strconv.Itoa(params.Page))
	q.Set("q", params.Query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("search request failed: unexpected status %s", resp.Status)
	}

	var torrents []domain.Torrent
	if err := json.NewDecoder(resp.Body).Decode(&torrents); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	return torrents, nil
}
