package engine

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"

	"github.com/seamlessly/outreach-cli/internal/model"
)

// Source describes one discovery channel: the search queries to run and a
// filter deciding which hits look like real opportunities.
type Source struct {
	Name      string
	EventType model.EventType
	Location  string
	Queries   []string
	Accept    func(SearchResult) bool
}

// DiscoverReport summarizes a discovery run.
type DiscoverReport struct {
	Found int
	Added int
}

var conferenceRe = regexp.MustCompile(`(?i)conference|summit|cfp|speakers`)

// ConferenceSource hunts for conference CFPs.
func ConferenceSource() Source {
	return Source{
		Name:      "conference-hunter",
		EventType: model.EventConference,
		Queries: []string{
			"hospitality conference 2026 call for speakers",
			"food and beverage summit CFP",
			"restaurant innovation conference speakers",
		},
		Accept: func(r SearchResult) bool {
			return conferenceRe.MatchString(r.Title + " " + r.Snippet)
		},
	}
}

// UniversitySource prospects for university program speaking slots.
func UniversitySource() Source {
	return Source{
		Name:      "university-prospector",
		EventType: model.EventUniversity,
		Queries: []string{
			"hospitality management program .edu guest speaker",
		},
		Accept: func(r SearchResult) bool {
			return strings.Contains(r.Link, ".edu")
		},
	}
}

// PodcastSource finds podcasts accepting guests.
func PodcastSource() Source {
	return Source{
		Name:      "podcast-finder",
		EventType: model.EventPodcast,
		Location:  "Remote",
		Queries: []string{
			"hospitality podcast accepting guests 2026",
		},
		Accept: func(r SearchResult) bool { return true },
	}
}

// Discover runs a source's queries against the search provider and appends
// new opportunities. A missing provider or an empty result set means zero
// opportunities, never a failure. Duplicates (by URL or event name, case
// folded) against existing records and within the run are dropped.
func (e *Engine) Discover(ctx context.Context, src Source) (DiscoverReport, error) {
	log := zap.L().With(zap.String("workflow", src.Name))

	if e.searcher == nil {
		log.Warn("search provider not configured, skipping discovery")
		return DiscoverReport{}, nil
	}

	existing, err := e.store.ListOpportunities(ctx)
	if err != nil {
		return DiscoverReport{}, eris.Wrapf(err, "%s: list opportunities", src.Name)
	}

	fold := cases.Fold()
	seen := make(map[string]bool, len(existing)*2)
	for _, o := range existing {
		if o.URL != "" {
			seen[fold.String(o.URL)] = true
		}
		seen[fold.String(o.EventName)] = true
	}

	// Queries run concurrently; results keep query order for reproducible
	// truncation.
	perQuery := make([][]SearchResult, len(src.Queries))
	var mu sync.Mutex
	g, gCtx := errgroup.WithContext(ctx)
	for i, q := range src.Queries {
		g.Go(func() error {
			results, searchErr := e.searcher.Search(gCtx, q)
			if searchErr != nil {
				// Provider errors mean zero results for this query.
				e.logError(gCtx, src.Name, eris.Wrapf(searchErr, "%s: search %q", src.Name, q))
				return nil
			}
			mu.Lock()
			perQuery[i] = results
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return DiscoverReport{}, eris.Wrapf(err, "%s: search", src.Name)
	}

	var report DiscoverReport
	var candidates []SearchResult
	for _, results := range perQuery {
		for _, r := range results {
			if r.Title == "" || r.Link == "" {
				continue
			}
			if src.Accept != nil && !src.Accept(r) {
				continue
			}
			key := fold.String(r.Link)
			if seen[key] || seen[fold.String(r.Title)] {
				continue
			}
			seen[key] = true
			seen[fold.String(r.Title)] = true
			candidates = append(candidates, r)
		}
	}
	report.Found = len(candidates)

	for _, r := range capBatch(candidates, e.limits.Discoveries) {
		o := model.Opportunity{
			EventName:      r.Title,
			EventType:      src.EventType,
			Location:       src.Location,
			URL:            r.Link,
			Description:    truncate(r.Snippet, 500),
			Status:         model.StatusNew,
			Source:         src.Name,
			DiscoveredDate: e.today(),
		}
		if err := e.store.CreateOpportunity(ctx, &o); err != nil {
			e.logError(ctx, src.Name, eris.Wrapf(err, "%s: create opportunity %q", src.Name, r.Title))
			continue
		}
		report.Added++
		log.Info("added opportunity",
			zap.Int64("id", o.ID),
			zap.String("event", o.EventName),
			zap.String("url", o.URL),
		)
	}

	return report, nil
}
