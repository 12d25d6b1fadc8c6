package gallery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultListPath = "photos/list.json"

// Client fetches photo listings from a gallery server.
type Client struct {
	baseURL  string
	listPath string
	http     *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:  normalizeBase(baseURL),
		listPath: defaultListPath,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// WithListPath overrides the listing path relative to the base URL.
func (c *Client) WithListPath(path string) *Client {
	if path != "" {
		c.listPath = path
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches and decodes the photo listing. Any non-2xx response or
// decode failure is returned as an error; the caller treats them all
// uniformly as a server error.
func (c *Client) List(ctx context.Context) ([]Photo, error) {
	url := c.baseURL + c.listPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	var photos []Photo
	if err := json.NewDecoder(resp.Body).Decode(&photos); err != nil {
		return nil, fmt.Errorf("decoding photo list: %w", err)
	}
	return photos, nil
}
