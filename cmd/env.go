package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/seamlessly/outreach-cli/internal/engine"
	"github.com/seamlessly/outreach-cli/internal/scrape"
	"github.com/seamlessly/outreach-cli/internal/store"
	"github.com/seamlessly/outreach-cli/pkg/anthropic"
	"github.com/seamlessly/outreach-cli/pkg/brevo"
	"github.com/seamlessly/outreach-cli/pkg/serp"
)

// openStore opens the configured backend and applies migrations.
func openStore(ctx context.Context) (store.Store, error) {
	var (
		st  store.Store
		err error
	)
	switch cfg.Store.Driver {
	case "sqlite":
		st, err = store.NewSQLite(cfg.Store.Path)
	case "postgres":
		st, err = store.NewPostgres(ctx, cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
	if err != nil {
		return nil, eris.Wrap(err, "open store")
	}

	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}
	return st, nil
}

// serpSearcher adapts the SerpAPI client to the engine's search contract.
type serpSearcher struct {
	client serp.Client
}

func (s serpSearcher) Search(ctx context.Context, query string) ([]engine.SearchResult, error) {
	hits, err := s.client.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	results := make([]engine.SearchResult, len(hits))
	for i, h := range hits {
		results[i] = engine.SearchResult{
			Title:   h.Title,
			Link:    h.Link,
			Snippet: h.Snippet,
		}
	}
	return results, nil
}

// brevoMailer adapts the Brevo client to the engine's mail contract.
type brevoMailer struct {
	client brevo.Client
}

func (m brevoMailer) Send(ctx context.Context, to, subject, body string) error {
	return m.client.SendEmail(ctx, to, subject, body)
}

// simulatedMailer logs the send and reports success without delivering
// anything. Used when no Brevo key is configured, so the full outreach
// flow can be exercised in a dry run.
type simulatedMailer struct{}

func (simulatedMailer) Send(_ context.Context, to, subject, _ string) error {
	zap.L().Warn("brevo key not set; simulating send",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}

func newSearcher() engine.Searcher {
	if cfg.Serp.Key == "" {
		return nil
	}
	return serpSearcher{client: serp.NewClient(cfg.Serp.Key,
		serp.WithBaseURL(cfg.Serp.BaseURL),
		serp.WithResults(cfg.Serp.Results),
	)}
}

func newFetcher() engine.Fetcher {
	return scrape.NewHTTPFetcher(
		scrape.WithTimeout(time.Duration(cfg.Scrape.TimeoutSecs) * time.Second),
	)
}

func newMailer() engine.Mailer {
	if cfg.Brevo.Key == "" {
		return simulatedMailer{}
	}
	return brevoMailer{client: brevo.NewClient(cfg.Brevo.Key,
		brevo.WithBaseURL(cfg.Brevo.BaseURL),
		brevo.WithSender(cfg.Brevo.SenderEmail, cfg.Brevo.SenderName),
	)}
}

func newGenerator() engine.Generator {
	if cfg.Anthropic.Key == "" {
		zap.L().Info("anthropic key not set; using template pitches")
		return engine.TemplateGenerator{}
	}
	return engine.NewClaudeGenerator(anthropic.NewClient(cfg.Anthropic.Key), cfg.Anthropic.Model)
}

func limitsFromConfig() engine.Limits {
	return engine.Limits{
		Sends:                cfg.Outreach.MaxSends,
		FollowUps:            cfg.Outreach.MaxFollowUps,
		Connections:          cfg.Outreach.MaxConnections,
		Pitches:              cfg.Outreach.MaxPitches,
		Discoveries:          cfg.Outreach.MaxDiscoveries,
		Enrichments:          cfg.Outreach.MaxEnrichments,
		FollowUpIntervalDays: cfg.Outreach.FollowUpIntervalDays,
		MaxFollowUps:         cfg.Outreach.FollowUpMax,
	}
}

// newEngine opens the store and wires every collaborator the configuration
// provides. Stages tolerate missing optional collaborators; the engine is
// shared across all batch commands.
func newEngine(ctx context.Context) (*engine.Engine, store.Store, error) {
	st, err := openStore(ctx)
	if err != nil {
		return nil, nil, err
	}

	eng := engine.New(st,
		engine.WithSearcher(newSearcher()),
		engine.WithFetcher(newFetcher()),
		engine.WithMailer(newMailer()),
		engine.WithGenerator(newGenerator()),
		engine.WithLimits(limitsFromConfig()),
	)
	return eng, st, nil
}
