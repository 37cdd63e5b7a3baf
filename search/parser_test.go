package search

import (
	"fmt"
	"strings"
	"testing"
)

func resultDiv(title, href, snippet string) string {
	link := ""
	if href != "" {
		link = fmt.Sprintf(`<h2 class="result__title"><a class="result__a" href=%q>%s</a></h2>`, href, title)
	}
	return fmt.Sprintf(`<div class="result results_links results_links_deep web-result">%s<a class="result__snippet">%s</a></div>`, link, snippet)
}

func resultsPage(divs ...string) string {
	return fmt.Sprintf(`<html><body><div class="serp__results">%s</div></body></html>`, strings.Join(divs, "\n"))
}

func TestParseResultsStopsAtMax(t *testing.T) {
	var divs []string
	for i := 1; i <= 8; i++ {
		divs = append(divs, resultDiv(
			fmt.Sprintf("Result %d", i),
			fmt.Sprintf("https://example.com/%d", i),
			fmt.Sprintf("Snippet %d", i),
		))
	}

	results, err := ParseResults(resultsPage(divs...), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	for i, r := range results {
		wantTitle := fmt.Sprintf("Result %d", i+1)
		wantURL := fmt.Sprintf("https://example.com/%d", i+1)
		if r.Title != wantTitle {
			t.Errorf("result %d: expected title %q, got %q", i, wantTitle, r.Title)
		}
		if r.URL != wantURL {
			t.Errorf("result %d: expected url %q, got %q", i, wantURL, r.URL)
		}
	}
}

func TestParseResultsFewerThanMax(t *testing.T) {
	page := resultsPage(
		resultDiv("One", "https://example.com/1", "first"),
		resultDiv("Two", "https://example.com/2", "second"),
		resultDiv("Three", "https://example.com/3", "third"),
	)

	results, err := ParseResults(page, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[2].Description != "third" {
		t.Errorf("expected description %q, got %q", "third", results[2].Description)
	}
}

func TestParseResultsSkipsContainersWithoutLink(t *testing.T) {
	page := resultsPage(
		resultDiv("One", "https://example.com/1", "first"),
		resultDiv("", "", "ad block without link"),
		resultDiv("Two", "https://example.com/2", "second"),
	)

	results, err := ParseResults(page, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Title != "One" || results[1].Title != "Two" {
		t.Errorf("unexpected titles: %q, %q", results[0].Title, results[1].Title)
	}
}

func TestParseResultsMissingSnippet(t *testing.T) {
	page := resultsPage(
		`<div class="result"><h2 class="result__title"><a class="result__a" href="https://example.com">Only link</a></h2></div>`,
	)

	results, err := ParseResults(page, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Description != "" {
		t.Errorf("expected empty description, got %q", results[0].Description)
	}
}

func TestParseResultsEmptyDocument(t *testing.T) {
	results, err := ParseResults("<html><body></body></html>", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results == nil {
		t.Fatal("expected non-nil slice")
	}
	if len(results) != 0 {
		t.Fatalf("expected 0 results, got %d", len(results))
	}
}

func TestParseResultsNonPositiveMax(t *testing.T) {
	page := resultsPage(resultDiv("One", "https://example.com/1", "first"))

	for _, max := range []int{0, -1} {
		results, err := ParseResults(page, max)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Fatalf("max %d: expected 0 results, got %d", max, len(results))
		}
	}
}
