package reader

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// TrafilaturaExtractor extracts article content and metadata with
// go-trafilatura.
type TrafilaturaExtractor struct{}

func NewTrafilaturaExtractor() *TrafilaturaExtractor {
	return &TrafilaturaExtractor{}
}

func (te *TrafilaturaExtractor) Extract(htmlContent, pageURL string) (*Extraction, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse page url: %w", err)
	}

	opts := trafilatura.Options{
		OriginalURL: parsedURL,
	}

	result, err := trafilatura.Extract(strings.NewReader(htmlContent), opts)
	if err != nil {
		return nil, fmt.Errorf("trafilatura extraction: %w", err)
	}

	contentHTML := ""
	if result.ContentNode != nil {
		contentHTML, err = RenderNodeToString(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &Extraction{
		Title:   result.Metadata.Title,
		Content: result.ContentText,
		HTML:    contentHTML,
	}, nil
}

// RenderNodeToString serializes an HTML node back to markup.
func RenderNodeToString(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
