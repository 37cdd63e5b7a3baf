package reader

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Extraction is the output of one extractor run. HTML holds the markup of
// the selected content region so it can be rendered to other formats.
type Extraction struct {
	Title   string
	Content string
	HTML    string
}

type Extractor interface {
	Extract(htmlContent, pageURL string) (*Extraction, error)
}

// boilerplateSelector matches elements whose text never belongs in extracted
// content. They are removed before anything else looks at the document, so
// nested occurrences inside the chosen container cannot leak through.
const boilerplateSelector = "script, style, nav, header, footer, aside"

// containerSelectors is the ordered list of main-content candidates. The
// first selector with a match wins; the class-substring match is
// case-sensitive and applies to the whole class attribute.
var containerSelectors = []string{
	"main",
	"article",
	`[class*="content"], [class*="article"], [class*="post"], [class*="main"]`,
	"body",
}

// HeuristicExtractor locates the main-content region of a document without
// any readability scoring: fixed tag removal, then a fixed priority list of
// containers, then plain text serialization.
type HeuristicExtractor struct{}

func NewHeuristicExtractor() *HeuristicExtractor {
	return &HeuristicExtractor{}
}

func (he *HeuristicExtractor) Extract(htmlContent, pageURL string) (*Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find(boilerplateSelector).Remove()

	container := mainContent(doc)

	containerHTML, err := RenderNodeToString(container.Nodes[0])
	if err != nil {
		return nil, fmt.Errorf("render content node: %w", err)
	}

	return &Extraction{
		Title:   title,
		Content: collapseBlankLines(visibleText(container)),
		HTML:    containerHTML,
	}, nil
}

// mainContent evaluates containerSelectors lazily and returns the first
// match, falling back to the whole document when nothing matches.
func mainContent(doc *goquery.Document) *goquery.Selection {
	for _, selector := range containerSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return doc.Selection
}

// visibleText joins the trimmed text nodes under sel with newlines,
// skipping nodes that are whitespace only.
func visibleText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, "\n")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			*parts = append(*parts, text)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// collapseBlankLines trims every line and drops the empty ones, so a run of
// newlines never survives into the output.
func collapseBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
