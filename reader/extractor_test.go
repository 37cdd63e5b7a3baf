package reader

import (
	"strings"
	"testing"
)

func TestHeuristicExtractorContainerPriority(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		want    string
		exclude []string
	}{
		{
			name: "main preferred over article",
			html: `<html><head><title>t</title></head><body>
				<article>article text</article>
				<main>main text</main>
			</body></html>`,
			want:    "main text",
			exclude: []string{"article text"},
		},
		{
			name: "article when no main",
			html: `<html><body>
				<div>outside</div>
				<article>article text</article>
			</body></html>`,
			want:    "article text",
			exclude: []string{"outside"},
		},
		{
			name: "first class substring match in document order",
			html: `<html><body>
				<div class="post-box">post text</div>
				<div class="content-area">content text</div>
			</body></html>`,
			want:    "post text",
			exclude: []string{"content text"},
		},
		{
			name: "class matching is case sensitive",
			html: `<html><body>
				<div class="Content">capitalized</div>
				<div>rest of body</div>
			</body></html>`,
			want: "capitalized\nrest of body",
		},
		{
			name: "body fallback",
			html: `<html><body><div class="x"><p>body text</p></div></body></html>`,
			want: "body text",
		},
	}

	extractor := NewHeuristicExtractor()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractor.Extract(tt.html, "https://example.com")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Content != tt.want {
				t.Errorf("expected content %q, got %q", tt.want, got.Content)
			}
			for _, excluded := range tt.exclude {
				if strings.Contains(got.Content, excluded) {
					t.Errorf("content should not contain %q: %q", excluded, got.Content)
				}
			}
		})
	}
}

func TestHeuristicExtractorStripsBoilerplate(t *testing.T) {
	html := `<html><head><title>Page</title><style>body { color: red }</style></head><body>
		<nav>NAVBAR</nav>
		<header>HEADER</header>
		<main>
			<script>var x = "SCRIPT";</script>
			<p>kept paragraph</p>
			<aside>ASIDE</aside>
		</main>
		<footer>FOOTER</footer>
	</body></html>`

	got, err := NewHeuristicExtractor().Extract(html, "https://example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Content != "kept paragraph" {
		t.Errorf("expected content %q, got %q", "kept paragraph", got.Content)
	}
	for _, marker := range []string{"NAVBAR", "HEADER", "SCRIPT", "ASIDE", "FOOTER", "color: red"} {
		if strings.Contains(got.Content, marker) {
			t.Errorf("content should not contain %q", marker)
		}
	}
}

func TestHeuristicExtractorCollapsesBlankLines(t *testing.T) {
	html := "<html><body><main>A\n\n\nB</main></body></html>"

	got, err := NewHeuristicExtractor().Extract(html, "https://example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Content != "A\nB" {
		t.Errorf("expected %q, got %q", "A\nB", got.Content)
	}
}

func TestHeuristicExtractorTitle(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "title present",
			html: `<html><head><title>  Page Title  </title></head><body><main>x</main></body></html>`,
			want: "Page Title",
		},
		{
			name: "title missing",
			html: `<html><body><main>x</main></body></html>`,
			want: "",
		},
	}

	extractor := NewHeuristicExtractor()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractor.Extract(tt.html, "https://example.com")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Title != tt.want {
				t.Errorf("expected title %q, got %q", tt.want, got.Title)
			}
		})
	}
}

func TestHeuristicExtractorNonHTMLInput(t *testing.T) {
	got, err := NewHeuristicExtractor().Extract("just plain text, no markup", "https://example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Content != "just plain text, no markup" {
		t.Errorf("unexpected content: %q", got.Content)
	}
}

func TestHeuristicExtractorHTMLFragment(t *testing.T) {
	html := `<html><body><main><p>one</p><p>two</p></main></body></html>`

	got, err := NewHeuristicExtractor().Extract(html, "https://example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got.HTML, "<main>") || !strings.Contains(got.HTML, "<p>one</p>") {
		t.Errorf("expected HTML of the selected container, got %q", got.HTML)
	}
}
