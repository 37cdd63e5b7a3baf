package search

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	resultSelector  = ".result"
	linkSelector    = ".result__a"
	snippetSelector = ".result__snippet"
)

// ParseResults scans a results page for result containers and collects up to
// max records in document order. A container without a result link is
// skipped and does not count toward max. Iteration stops the moment max
// results have been collected; later containers are never inspected.
func ParseResults(htmlContent string, max int) ([]SearchResult, error) {
	if max < 1 {
		return []SearchResult{}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parse results page: %w", err)
	}

	results := make([]SearchResult, 0, max)
	doc.Find(resultSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		link := sel.Find(linkSelector).First()
		if link.Length() == 0 {
			return true
		}

		href, _ := link.Attr("href")
		results = append(results, SearchResult{
			Title:       strings.TrimSpace(link.Text()),
			URL:         href,
			Description: strings.TrimSpace(sel.Find(snippetSelector).First().Text()),
		})

		return len(results) < max
	})

	return results, nil
}
