// Package brevo provides a client for the Brevo transactional email API.
package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// Client defines the mail operations used by outreach and follow-up.
type Client interface {
	// SendEmail delivers one transactional email. The body is plain text;
	// newlines are converted to <br> for the HTML payload.
	SendEmail(ctx context.Context, to, subject, body string) error
}

// Option configures the Brevo client.
type Option func(*httpClient)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) Option {
	return func(c *httpClient) { c.baseURL = u }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) { c.http = hc }
}

// WithSender overrides the default sender identity.
func WithSender(email, name string) Option {
	return func(c *httpClient) {
		if email != "" {
			c.senderEmail = email
		}
		if name != "" {
			c.senderName = name
		}
	}
}

// WithRateLimit overrides the default send rate (5 req/s).
func WithRateLimit(rps float64) Option {
	return func(c *httpClient) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), max(int(rps), 1))
		} else {
			c.limiter = nil
		}
	}
}

type httpClient struct {
	apiKey      string
	baseURL     string
	senderEmail string
	senderName  string
	limiter     *rate.Limiter
	http        *http.Client
}

// NewClient creates a new Brevo client with the given API key.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:      apiKey,
		baseURL:     "https://api.brevo.com",
		senderEmail: "outreach@example.com",
		senderName:  "Seamlessly",
		limiter:     rate.NewLimiter(5, 1),
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type emailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendRequest struct {
	Sender      emailAddress   `json:"sender"`
	To          []emailAddress `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

func (c *httpClient) SendEmail(ctx context.Context, to, subject, body string) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return eris.Wrap(err, "brevo: rate limit")
		}
	}

	payload, err := json.Marshal(sendRequest{
		Sender:      emailAddress{Email: c.senderEmail, Name: c.senderName},
		To:          []emailAddress{{Email: to}},
		Subject:     subject,
		HTMLContent: strings.ReplaceAll(body, "\n", "<br>"),
	})
	if err != nil {
		return eris.Wrap(err, "brevo: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v3/smtp/email", bytes.NewReader(payload))
	if err != nil {
		return eris.Wrap(err, "brevo: create request")
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrap(err, "brevo: send request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return eris.Errorf("brevo: status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
