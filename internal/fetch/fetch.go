// Package fetch resolves a feed URL to raw bytes and a status code. It is a
// thin wrapper around an HTTP client: no retries, no caching, and no
// redirect policy beyond the client default.
package fetch

import (
	"context"
	"io"
	"net/http"
	"time"
)

const defaultFetchTimeout = 15 * time.Second

// Fetcher is implemented by HTTPFetcher and mocked in tests.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (int, []byte, error)
}

type HTTPFetcher struct {
	client *http.Client
}

func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: defaultFetchTimeout},
	}
}

// Fetch performs a GET and returns the status code with the full body. A
// non-2xx response is not an error here; the caller decides what a status
// means.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}
