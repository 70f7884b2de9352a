// Package engine drives the opportunity lifecycle: discovery, enrichment,
// scoring, pitching, outreach, follow-up, and response handling. Each stage
// is a standalone batch run that loads all records, filters them with the
// eligibility predicates, caps the batch, and processes the selection
// sequentially. Per-record failures go to the error log and never abort the
// batch.
package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/seamlessly/outreach-cli/internal/model"
	"github.com/seamlessly/outreach-cli/internal/store"
)

// maxErrorLen caps error log messages.
const maxErrorLen = 500

// SearchResult is one organic search hit from the search provider.
type SearchResult struct {
	Title   string
	Link    string
	Snippet string
}

// Searcher finds candidate events. Empty results and provider errors both
// mean zero opportunities, never a fatal condition.
type Searcher interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

// Fetcher retrieves a page body for contact extraction.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Mailer delivers one outbound email.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// PitchRequest carries the record attributes pitch generation works from.
type PitchRequest struct {
	EventName     string
	EventType     string
	OrganizerName string
	AudienceType  string
}

// Pitch is a generated pitch. All three fields must be non-empty.
type Pitch struct {
	Subject string
	Body    string
	Topic   string
}

// Generator produces pitch content and connection notes.
type Generator interface {
	Generate(ctx context.Context, req PitchRequest) (*Pitch, error)
	ConnectionNote(ctx context.Context, name, organization string) (string, error)
}

// Limits caps state-changing operations per invocation. Zero or negative
// values mean unlimited.
type Limits struct {
	Sends       int
	FollowUps   int
	Connections int
	Pitches     int
	Discoveries int
	Enrichments int

	FollowUpIntervalDays int
	MaxFollowUps         int
}

// DefaultLimits returns the per-run caps the workflows were tuned for.
func DefaultLimits() Limits {
	return Limits{
		Sends:                10,
		FollowUps:            10,
		Connections:          15,
		Pitches:              5,
		Discoveries:          5,
		Enrichments:          10,
		FollowUpIntervalDays: 7,
		MaxFollowUps:         3,
	}
}

// Engine holds the store handle and external collaborators for all stages.
// Stages that do not need a collaborator tolerate it being nil.
type Engine struct {
	store     store.Store
	searcher  Searcher
	fetcher   Fetcher
	mailer    Mailer
	generator Generator
	limits    Limits
	now       func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithSearcher sets the search provider used by discovery.
func WithSearcher(s Searcher) Option {
	return func(e *Engine) { e.searcher = s }
}

// WithFetcher sets the page fetcher used by enrichment and association scans.
func WithFetcher(f Fetcher) Option {
	return func(e *Engine) { e.fetcher = f }
}

// WithMailer sets the mail provider used by outreach and follow-up.
func WithMailer(m Mailer) Option {
	return func(e *Engine) { e.mailer = m }
}

// WithGenerator sets the pitch generator.
func WithGenerator(g Generator) Option {
	return func(e *Engine) { e.generator = g }
}

// WithLimits overrides the per-run caps.
func WithLimits(l Limits) Option {
	return func(e *Engine) { e.limits = l }
}

// WithClock overrides the time source. Tests use this to pin "today".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine around an open store.
func New(st store.Store, opts ...Option) *Engine {
	e := &Engine{
		store:  st,
		limits: DefaultLimits(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// today returns the current date truncated to midnight UTC. Date-valued
// fields never carry a time-of-day component.
func (e *Engine) today() time.Time {
	return e.now().UTC().Truncate(24 * time.Hour)
}

// logError records a per-record failure in the error log. Audit writes are
// best-effort: if the log itself is unreachable the failure still surfaces
// in the process log.
func (e *Engine) logError(ctx context.Context, workflow string, err error) {
	zap.L().Warn("stage error",
		zap.String("workflow", workflow),
		zap.Error(err),
	)
	entry := model.ErrorEntry{
		Workflow:  workflow,
		Message:   truncate(err.Error(), maxErrorLen),
		Timestamp: e.now(),
	}
	if aerr := e.store.AppendErrorLog(ctx, entry); aerr != nil {
		zap.L().Warn("append error log failed", zap.Error(aerr))
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
