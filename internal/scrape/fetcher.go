// Package scrape fetches event and organizer pages over plain HTTP and pulls
// contact details out of the raw HTML. It is deliberately lightweight: no
// headless browser, no third-party scraping API, just polite GETs with a
// browser user agent and a bounded retry.
package scrape

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rotisserie/eris"

	"github.com/seamlessly/outreach-cli/internal/resilience"
)

const maxBodyBytes = 512 * 1024

// HTTPFetcher retrieves pages with a desktop user agent so event sites that
// reject obvious bots still respond.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	retry     resilience.RetryConfig
}

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *HTTPFetcher) { f.client.Timeout = d }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *HTTPFetcher) { f.userAgent = ua }
}

// WithRetry overrides the retry configuration.
func WithRetry(cfg resilience.RetryConfig) Option {
	return func(f *HTTPFetcher) { f.retry = cfg }
}

// NewHTTPFetcher creates a fetcher with sensible defaults.
func NewHTTPFetcher(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		client: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		userAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36",
		retry:     resilience.DefaultRetryConfig(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch GETs a URL and returns the body as a string, retrying transient
// failures. Bodies are capped at 512 KiB.
func (f *HTTPFetcher) Fetch(ctx context.Context, targetURL string) (string, error) {
	return resilience.DoVal(ctx, f.retry, func(ctx context.Context) (string, error) {
		return f.fetchOnce(ctx, targetURL)
	})
}

func (f *HTTPFetcher) fetchOnce(ctx context.Context, targetURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return "", eris.Wrap(err, "scrape: create request")
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", resilience.NewTransientError(eris.Wrap(err, "scrape: fetch"), 0)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", resilience.NewTransientError(eris.Wrap(err, "scrape: read body"), 0)
	}

	if resilience.IsTransientHTTPStatus(resp.StatusCode) {
		return "", resilience.NewTransientError(
			eris.Errorf("scrape: status %d for %s", resp.StatusCode, targetURL), resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return "", eris.Errorf("scrape: status %d for %s", resp.StatusCode, targetURL)
	}

	return string(body), nil
}
