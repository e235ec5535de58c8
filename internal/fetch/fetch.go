// Package fetch is the single HTTP entry point for every scraped page and
// JSON API. Extractors depend on the Getter interface so tests can stub the
// network.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/deusflow/dailydash/internal/cache"
	"github.com/deusflow/dailydash/internal/metrics"
)

// Getter performs a timed GET and returns the raw body text. A failed fetch
// means the surrounding unit of work produced nothing; callers apply their
// own skip/null policy.
type Getter interface {
	Get(url string) (string, error)
}

type Client struct {
	http  *http.Client
	cache *cache.Cache
}

// NewClient builds a client with a fixed timeout. Timeouts surface as plain
// errors, same as connection failures.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		http:  &http.Client{Timeout: timeout},
		cache: cache.New(),
	}
}

func (c *Client) Get(url string) (string, error) {
	key := c.cache.GenerateKey(url)
	if body, ok := c.cache.Get(key); ok {
		return body, nil
	}

	resp, err := c.http.Get(url)
	if err != nil {
		return "", fmt.Errorf("error loading page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading body: %w", err)
	}

	body := string(data)
	c.cache.Set(key, body)
	metrics.Global.IncrementPagesFetched()
	return body, nil
}
