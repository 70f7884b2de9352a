package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/seamlessly/outreach-cli/internal/model"
)

// Association is one industry body whose events page gets scanned.
type Association struct {
	Name string
	URL  string
}

// DefaultAssociations lists the industry bodies the scanner targets.
func DefaultAssociations() []Association {
	return []Association{
		{Name: "National Restaurant Association", URL: "https://restaurant.org"},
		{Name: "American Hotel & Lodging Association", URL: "https://ahla.com"},
		{Name: "HFTP", URL: "https://hftp.org"},
	}
}

// ScanAssociations probes each association's events page and appends one
// opportunity per reachable association. Unreachable pages are skipped
// with a warning; they are expected churn, not per-record failures.
func (e *Engine) ScanAssociations(ctx context.Context, assocs []Association) (DiscoverReport, error) {
	log := zap.L().With(zap.String("workflow", "association-scanner"))

	if e.fetcher == nil {
		log.Warn("page fetcher not configured, skipping association scan")
		return DiscoverReport{}, nil
	}

	existing, err := e.store.ListOpportunities(ctx)
	if err != nil {
		return DiscoverReport{}, eris.Wrap(err, "association-scanner: list opportunities")
	}
	fold := cases.Fold()
	seen := make(map[string]bool, len(existing))
	for _, o := range existing {
		if o.URL != "" {
			seen[fold.String(o.URL)] = true
		}
	}

	var report DiscoverReport
	for _, assoc := range assocs {
		if seen[fold.String(assoc.URL)] {
			continue
		}

		eventsURL := strings.TrimSuffix(assoc.URL, "/") + "/events"
		if _, fetchErr := e.fetcher.Fetch(ctx, eventsURL); fetchErr != nil {
			log.Warn("could not fetch events page",
				zap.String("association", assoc.Name),
				zap.Error(fetchErr),
			)
			continue
		}
		report.Found++

		o := model.Opportunity{
			EventName:      assoc.Name + " - Events",
			EventType:      model.EventAssociation,
			URL:            assoc.URL,
			Description:    fmt.Sprintf("Events and programs from %s. Check %s/events for current listings.", assoc.Name, assoc.URL),
			AudienceType:   "association members, industry",
			Status:         model.StatusNew,
			Source:         "association-scanner",
			DiscoveredDate: e.today(),
		}
		if err := e.store.CreateOpportunity(ctx, &o); err != nil {
			e.logError(ctx, "association-scanner", eris.Wrapf(err, "association-scanner: create %q", assoc.Name))
			continue
		}
		report.Added++
		log.Info("added association opportunity", zap.Int64("id", o.ID), zap.String("event", o.EventName))
	}

	return report, nil
}
