package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/huytd/quicksearch/pkg/httpclient"
)

const serpApiBaseURL = "https://serpapi.com/search"

// SerpApiSearchEngine is the alternate backend selected by configuration.
// It serves the same contract as the DuckDuckGo engine from SerpApi's
// Google results.
type SerpApiSearchEngine struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	proxy   *url.URL
}

type serpApiResponse struct {
	OrganicResults []struct {
		Position int    `json:"position"`
		Title    string `json:"title"`
		Link     string `json:"link"`
		Snippet  string `json:"snippet"`
	} `json:"organic_results"`
}

func NewSerpApiSearchEngine(apiKey string, timeout time.Duration, proxy *url.URL) *SerpApiSearchEngine {
	return &SerpApiSearchEngine{
		baseURL: serpApiBaseURL,
		apiKey:  apiKey,
		timeout: timeout,
		proxy:   proxy,
	}
}

func (s *SerpApiSearchEngine) Search(ctx context.Context, req *SearchRequest) ([]SearchResult, error) {
	max := req.MaxResults
	if max <= 0 {
		max = defaultMaxResults
	}

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", req.Query)
	params.Set("api_key", s.apiKey)
	params.Set("num", strconv.Itoa(max))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}

	client := httpclient.New(s.timeout, s.proxy)
	defer client.CloseIdleConnections()

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi returned status %d", resp.StatusCode)
	}

	var searchResp serpApiResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("decode serpapi response: %w", err)
	}

	results := make([]SearchResult, 0, len(searchResp.OrganicResults))
	for _, item := range searchResp.OrganicResults {
		if len(results) >= max {
			break
		}
		results = append(results, SearchResult{
			Title:       item.Title,
			URL:         item.Link,
			Description: item.Snippet,
		})
	}

	return results, nil
}
