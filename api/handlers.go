package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/huytd/quicksearch/pkg/metrics"
	"github.com/huytd/quicksearch/reader"
	"github.com/huytd/quicksearch/search"
)

const (
	defaultLimit = 10
	minLimit     = 1
	maxLimit     = 50
)

// SearchResponse is the payload returned by a successful search.
type SearchResponse struct {
	Query        string                `json:"query"`
	ResultsCount int                   `json:"results_count"`
	Results      []search.SearchResult `json:"results"`
}

// SearchErrorResponse is returned when the search pipeline fails. The
// endpoint still answers 200 so API clients can surface the error text.
type SearchErrorResponse struct {
	Query   string                `json:"query"`
	Error   string                `json:"error"`
	Results []search.SearchResult `json:"results"`
}

// DetailResponse carries a single human-readable error message.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// EndpointInfo documents a single API endpoint.
type EndpointInfo struct {
	Method      string            `json:"method"`
	Description string            `json:"description"`
	Parameters  map[string]string `json:"parameters"`
}

// APIInfo is the capability document served at the root path.
type APIInfo struct {
	Name      string                  `json:"name"`
	Version   string                  `json:"version"`
	Endpoints map[string]EndpointInfo `json:"endpoints"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, DetailResponse{Detail: "missing q parameter"})
		return
	}

	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < minLimit || parsed > maxLimit {
			writeJSON(w, http.StatusBadRequest, DetailResponse{Detail: "limit must be an integer between 1 and 50"})
			return
		}
		limit = parsed
	}

	results, err := s.engine.Search(r.Context(), &search.SearchRequest{
		Query:      query,
		MaxResults: limit,
	})
	if err != nil {
		var upstream *search.UpstreamError
		if errors.As(err, &upstream) {
			metrics.UpstreamFailuresTotal.WithLabelValues("search").Inc()
		}
		ContextLogger(r.Context(), s.logger).Warn("search_failed",
			zap.String("query", query),
			zap.Error(err),
		)
		writeJSON(w, http.StatusOK, SearchErrorResponse{
			Query:   query,
			Error:   err.Error(),
			Results: []search.SearchResult{},
		})
		return
	}

	writeJSON(w, http.StatusOK, SearchResponse{
		Query:        query,
		ResultsCount: len(results),
		Results:      results,
	})
}

func (s *Server) handleRead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		writeJSON(w, http.StatusBadRequest, DetailResponse{Detail: "missing url parameter"})
		return
	}

	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = reader.ModeHeuristic
	}
	if !reader.SupportedMode(mode) {
		writeJSON(w, http.StatusBadRequest, DetailResponse{Detail: "unsupported mode: " + mode})
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = reader.FormatText
	}
	if !reader.SupportedFormat(format) {
		writeJSON(w, http.StatusBadRequest, DetailResponse{Detail: "unsupported format: " + format})
		return
	}

	page, err := s.reader.Read(r.Context(), rawURL, mode, format)
	if err != nil {
		var fetchErr *reader.FetchError
		if errors.As(err, &fetchErr) {
			metrics.UpstreamFailuresTotal.WithLabelValues("read").Inc()
			ContextLogger(r.Context(), s.logger).Warn("page_fetch_failed",
				zap.String("url", rawURL),
				zap.Error(err),
			)
			writeJSON(w, http.StatusBadRequest, DetailResponse{Detail: "Error fetching URL: " + err.Error()})
			return
		}
		ContextLogger(r.Context(), s.logger).Error("content_extraction_failed",
			zap.String("url", rawURL),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, DetailResponse{Detail: "Error parsing content: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, apiInfo())
}

func apiInfo() APIInfo {
	return APIInfo{
		Name:    "QuickSearch API",
		Version: Version,
		Endpoints: map[string]EndpointInfo{
			"/search": {
				Method:      http.MethodGet,
				Description: "Search DuckDuckGo",
				Parameters: map[string]string{
					"q":     "Search query (required)",
					"limit": "Maximum results (optional, default: 10, max: 50)",
				},
			},
			"/read": {
				Method:      http.MethodGet,
				Description: "Fetch and extract text content from a URL",
				Parameters: map[string]string{
					"url":    "URL to fetch (required)",
					"mode":   "Extraction mode: heuristic, readability or trafilatura (optional, default: heuristic)",
					"format": "Output format: text or markdown (optional, default: text)",
				},
			},
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
