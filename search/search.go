package search

import (
	"context"
	"fmt"
)

// SearchResult is one organic result in document order. Results carry no
// identity beyond their position; nothing is deduplicated or re-ranked.
type SearchResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type SearchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results,omitempty"`
}

type SearchEngine interface {
	Search(ctx context.Context, req *SearchRequest) ([]SearchResult, error)
}

// UpstreamError reports that the search provider could not be reached
// (DNS, TLS, timeout, connection refused). Callers degrade to an
// error-carrying response instead of failing the whole request.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("search upstream unreachable: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
