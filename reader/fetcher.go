package reader

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/huytd/quicksearch/pkg/httpclient"
)

// Page is a fetched document before extraction.
type Page struct {
	Body       string
	FinalURL   string
	StatusCode int
}

// Fetcher retrieves arbitrary URLs with a browser User-Agent, following
// redirects. Each Fetch uses its own HTTP client released before return.
type Fetcher struct {
	userAgent string
	timeout   time.Duration
	proxy     *url.URL
}

func NewFetcher(userAgent string, timeout time.Duration, proxy *url.URL) *Fetcher {
	return &Fetcher{
		userAgent: userAgent,
		timeout:   timeout,
		proxy:     proxy,
	}
}

// Fetch GETs rawURL and returns the body, the final URL after redirects and
// the upstream status code. Non-2xx statuses are not errors; they are
// reported through StatusCode. Transport failures surface as *FetchError.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	client := httpclient.New(f.timeout, f.proxy)
	defer client.CloseIdleConnections()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}

	return &Page{
		Body:       string(body),
		FinalURL:   resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
	}, nil
}
