package reader

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetch(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		fmt.Fprint(w, "<html><body>hello</body></html>")
	}))
	defer server.Close()

	fetcher := NewFetcher("test-agent", 5*time.Second, nil)

	page, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if page.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", page.StatusCode)
	}
	if page.Body != "<html><body>hello</body></html>" {
		t.Errorf("unexpected body: %q", page.Body)
	}
	if gotUserAgent != "test-agent" {
		t.Errorf("expected user agent %q, got %q", "test-agent", gotUserAgent)
	}
}

func TestFetchFollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/final", http.StatusFound)
	})
	mux.HandleFunc("/final", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "destination")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	fetcher := NewFetcher("test-agent", 5*time.Second, nil)

	page, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if page.FinalURL != server.URL+"/final" {
		t.Errorf("expected final URL %q, got %q", server.URL+"/final", page.FinalURL)
	}
	if page.Body != "destination" {
		t.Errorf("unexpected body: %q", page.Body)
	}
}

func TestFetchUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	fetcher := NewFetcher("test-agent", 5*time.Second, nil)

	_, err := fetcher.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error for unreachable server")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %T: %v", err, err)
	}
}

func TestFetchNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not here", http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewFetcher("test-agent", 5*time.Second, nil)

	page, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", page.StatusCode)
	}
}
