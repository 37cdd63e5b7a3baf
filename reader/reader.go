package reader

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const (
	ModeHeuristic   = "heuristic"
	ModeReadability = "readability"
	ModeTrafilatura = "trafilatura"

	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// PageContent is the wire shape of a read page.
type PageContent struct {
	URL        string `json:"url"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	StatusCode int    `json:"status_code"`
}

// PageReader fetches a URL and extracts its readable content.
type PageReader interface {
	Read(ctx context.Context, rawURL, mode, format string) (*PageContent, error)
}

// Client runs the read pipeline: fetch, extract with the requested mode,
// render in the requested format.
type Client struct {
	fetcher    *Fetcher
	extractors map[string]Extractor
	logger     *zap.Logger
}

func NewClient(userAgent string, timeout time.Duration, proxy *url.URL, logger *zap.Logger) *Client {
	return &Client{
		fetcher: NewFetcher(userAgent, timeout, proxy),
		extractors: map[string]Extractor{
			ModeHeuristic:   NewHeuristicExtractor(),
			ModeReadability: NewReadabilityExtractor(),
			ModeTrafilatura: NewTrafilaturaExtractor(),
		},
		logger: logger,
	}
}

func SupportedMode(mode string) bool {
	switch mode {
	case ModeHeuristic, ModeReadability, ModeTrafilatura:
		return true
	}
	return false
}

func SupportedFormat(format string) bool {
	switch format {
	case FormatText, FormatMarkdown:
		return true
	}
	return false
}

// Read fetches rawURL and extracts its content. Fetch failures return a
// *FetchError; an unknown mode and everything after a successful fetch
// return a *ExtractError. The mode is resolved before any network I/O.
func (c *Client) Read(ctx context.Context, rawURL, mode, format string) (*PageContent, error) {
	extractor, ok := c.extractors[mode]
	if !ok {
		return nil, &ExtractError{Err: fmt.Errorf("unsupported mode %q", mode)}
	}

	page, err := c.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	result, err := extractor.Extract(page.Body, page.FinalURL)
	if err != nil {
		return nil, &ExtractError{Err: err}
	}

	content := result.Content
	if format == FormatMarkdown {
		md, err := ToMarkdown(result.HTML)
		if err != nil {
			return nil, &ExtractError{Err: err}
		}
		content = md
	}

	c.logger.Info("content_extracted",
		zap.String("url", page.FinalURL),
		zap.String("mode", mode),
		zap.String("format", format),
		zap.String("title", result.Title),
		zap.Int("status_code", page.StatusCode),
		zap.Int("content_length", len(content)),
	)

	return &PageContent{
		URL:        page.FinalURL,
		Title:      result.Title,
		Content:    content,
		StatusCode: page.StatusCode,
	}, nil
}
