// Package httpclient builds the short-lived HTTP clients used for outbound
// fetches. A client is scoped to a single handler invocation; callers
// release it with CloseIdleConnections before returning.
package httpclient

import (
	"net/http"
	"net/url"
	"time"
)

// New returns a client with the given total request timeout. When proxy is
// non-nil, all requests are routed through it.
func New(timeout time.Duration, proxy *url.URL) *http.Client {
	client := &http.Client{
		Timeout: timeout,
	}
	if proxy != nil {
		client.Transport = &http.Transport{
			Proxy: http.ProxyURL(proxy),
		}
	}
	return client
}
