package reader

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
)

// ReadabilityExtractor extracts article content with go-readability's
// scoring instead of the fixed container heuristic.
type ReadabilityExtractor struct{}

func NewReadabilityExtractor() *ReadabilityExtractor {
	return &ReadabilityExtractor{}
}

func (re *ReadabilityExtractor) Extract(htmlContent, pageURL string) (*Extraction, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse page url: %w", err)
	}

	article, err := readability.FromReader(strings.NewReader(htmlContent), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("readability extraction: %w", err)
	}

	return &Extraction{
		Title:   article.Title,
		Content: article.TextContent,
		HTML:    article.Content,
	}, nil
}
