package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seamlessly/outreach-cli/internal/resilience"
)

func TestExtractContactEmailAndName(t *testing.T) {
	page := `<html><body>
		<h1>Hospitality Summit</h1>
		<p>Contact: Jordan Lee at jordan.lee@summit.example.com for speaker inquiries.</p>
	</body></html>`

	info := ExtractContact(page)
	assert.Equal(t, "jordan.lee@summit.example.com", info.Email)
	assert.Equal(t, "Jordan Lee", info.Name)
	assert.False(t, info.Empty())
}

func TestExtractContactEmailOnly(t *testing.T) {
	info := ExtractContact(`<p>Reach us at events@venue.example.org anytime.</p>`)
	assert.Equal(t, "events@venue.example.org", info.Email)
	assert.Empty(t, info.Name)
}

func TestExtractContactNameOutsideWindow(t *testing.T) {
	// Name appears well past 200 chars after "contact" so the heuristic skips it.
	filler := make([]byte, 250)
	for i := range filler {
		filler[i] = 'x'
	}
	page := "contact " + string(filler) + " Jordan Lee"
	info := ExtractContact(page)
	assert.Empty(t, info.Name)
}

func TestExtractContactNothing(t *testing.T) {
	info := ExtractContact(`<html><body><p>no details here</p></body></html>`)
	assert.True(t, info.Empty())
}

func TestHTTPFetcherFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")
		_, _ = w.Write([]byte("<html>event page</html>"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(WithTimeout(2 * time.Second))
	body, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, body, "event page")
}

func TestHTTPFetcherRetriesOn503(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("recovered"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(WithRetry(resilience.RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		Multiplier:     2.0,
	}))
	body, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "recovered", body)
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPFetcherDoesNotRetry404(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(WithRetry(resilience.RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
	}))
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
