package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBaseURL = "https://www.reddit.com"
	requestTimeout = 10 * time.Second
	userAgent      = "today-tui/1.0 (terminal reader)"

	hotTTL     = 60 * time.Second
	hotCleanup = 5 * time.Minute
)

// Client talks to the public Reddit JSON API. A small in-memory hot
// cache absorbs rapid re-fetches of the same listing, and concurrent
// fetches of the same thread are collapsed into one request.
type Client struct {
	http    *http.Client
	baseURL string
	hot     *gocache.Cache
	flight  singleflight.Group
}

// NewClient creates a Reddit API client.
func NewClient() *Client {
	return &Client{
		http: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL: defaultBaseURL,
		hot:     gocache.New(hotTTL, hotCleanup),
	}
}

// get fetches a URL and decodes the JSON response into dst.
func (c *Client) get(ctx context.Context, url string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP %d from %s: %s", resp.StatusCode, url, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding response from %s: %w", url, err)
	}
	return nil
}
