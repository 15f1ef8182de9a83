package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// BaseURL is the default Wikipedia API endpoint.
const BaseURL = "https://en.wikipedia.org/w/api.php"

// Client looks up the canonical encyclopedia page for a free-text query.
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient creates a Wikipedia search client. A nil http.Client falls back
// to http.DefaultClient; baseURL is overridable for testing.
func NewClient(client *http.Client, baseURL string) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{client: client, baseURL: baseURL}
}

// FindPage queries the opensearch API and returns the first result's page
// URL. The opensearch response is a positional array:
// [query, [titles...], [descriptions...], [urls...]].
func (c *Client) FindPage(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("action", "opensearch")
	params.Set("search", query)
	params.Set("limit", "1")
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("search: failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("search: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search: unexpected status %d", resp.StatusCode)
	}

	var payload []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("search: failed to decode response: %w", err)
	}
	if len(payload) < 4 {
		return "", fmt.Errorf("search: malformed opensearch response")
	}

	var urls []string
	if err := json.Unmarshal(payload[3], &urls); err != nil {
		return "", fmt.Errorf("search: failed to decode result urls: %w", err)
	}
	if len(urls) == 0 || urls[0] == "" {
		return "", fmt.Errorf("search: no page found for %q", query)
	}

	return urls[0], nil
}
