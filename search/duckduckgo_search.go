package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/huytd/quicksearch/pkg/httpclient"
)

const defaultMaxResults = 10

// DuckDuckGoSearchEngine queries DuckDuckGo's HTML endpoint the way a
// browser would: an initial GET to pick up the session cookies the provider
// hands out, then a POST carrying the query with those cookies replayed.
// Every Search call uses its own HTTP client; no state survives the call.
type DuckDuckGoSearchEngine struct {
	endpoint  string
	userAgent string
	timeout   time.Duration
	proxy     *url.URL
}

func NewDuckDuckGoSearchEngine(endpoint, userAgent string, timeout time.Duration, proxy *url.URL) *DuckDuckGoSearchEngine {
	return &DuckDuckGoSearchEngine{
		endpoint:  endpoint,
		userAgent: userAgent,
		timeout:   timeout,
		proxy:     proxy,
	}
}

func (e *DuckDuckGoSearchEngine) Search(ctx context.Context, req *SearchRequest) ([]SearchResult, error) {
	max := req.MaxResults
	if max <= 0 {
		max = defaultMaxResults
	}

	page, err := e.FetchHTML(ctx, req.Query)
	if err != nil {
		return nil, err
	}

	return ParseResults(page, max)
}

// FetchHTML returns the raw markup of a results page for query. Transport
// failures on either call surface as *UpstreamError.
func (e *DuckDuckGoSearchEngine) FetchHTML(ctx context.Context, query string) (string, error) {
	client := httpclient.New(e.timeout, e.proxy)
	defer client.CloseIdleConnections()

	getReq, err := http.NewRequestWithContext(ctx, http.MethodGet, e.endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create search request: %w", err)
	}
	getReq.Header.Set("User-Agent", e.userAgent)

	getResp, err := client.Do(getReq)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	cookies := getResp.Cookies()
	_, _ = io.Copy(io.Discard, getResp.Body)
	getResp.Body.Close()

	form := url.Values{}
	form.Set("q", query)
	// kl left empty: no region or language restriction.
	form.Set("kl", "")

	postReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create search request: %w", err)
	}
	postReq.Header.Set("User-Agent", e.userAgent)
	postReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		postReq.AddCookie(cookie)
	}

	postResp, err := client.Do(postReq)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	defer postResp.Body.Close()

	body, err := io.ReadAll(postResp.Body)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}

	return string(body), nil
}
