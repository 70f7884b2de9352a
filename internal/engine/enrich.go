package engine

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/seamlessly/outreach-cli/internal/model"
	"github.com/seamlessly/outreach-cli/internal/scrape"
)

// EnrichReport summarizes an enrichment run.
type EnrichReport struct {
	Eligible int
	Updated  int
}

// EnrichAll fetches the page of every record that has a URL but no
// organizer email and scrapes a best-effort contact. A page with no
// email-shaped token is simply skipped; fetch failures are logged per
// record and the batch continues. Each hit also seeds a Contact row.
func (e *Engine) EnrichAll(ctx context.Context) (EnrichReport, error) {
	log := zap.L().With(zap.String("workflow", "enrich"))

	if e.fetcher == nil {
		log.Warn("page fetcher not configured, skipping enrichment")
		return EnrichReport{}, nil
	}

	opps, err := e.store.ListOpportunities(ctx)
	if err != nil {
		return EnrichReport{}, eris.Wrap(err, "enrich: list opportunities")
	}

	var report EnrichReport
	for _, o := range opps {
		if !Enrichable(o) {
			continue
		}
		report.Eligible++

		// The cap counts successful updates, not attempts.
		if e.limits.Enrichments > 0 && report.Updated >= e.limits.Enrichments {
			continue
		}

		page, fetchErr := e.fetcher.Fetch(ctx, o.URL)
		if fetchErr != nil {
			e.logError(ctx, "enrich", eris.Wrapf(fetchErr, "enrich: fetch %s", o.URL))
			continue
		}

		info := scrape.ExtractContact(page)
		if info.Email == "" {
			log.Debug("no email on page", zap.Int64("id", o.ID), zap.String("url", o.URL))
			continue
		}

		o.OrganizerEmail = info.Email
		if info.Name != "" && o.OrganizerName == "" {
			o.OrganizerName = info.Name
		}
		if err := e.store.SaveOpportunity(ctx, o); err != nil {
			e.logError(ctx, "enrich", eris.Wrapf(err, "enrich: save opportunity %d", o.ID))
			continue
		}
		report.Updated++
		log.Info("enriched opportunity",
			zap.Int64("id", o.ID),
			zap.String("event", o.EventName),
			zap.String("email", info.Email),
		)

		contact := model.Contact{
			Name:         info.Name,
			Title:        o.OrganizerTitle,
			Organization: o.EventName,
			Email:        info.Email,
			LinkedIn:     o.OrganizerLinkedIn,
			EventRelated: o.EventName,
			Stage:        model.StageNewLead,
		}
		if err := e.store.AppendContact(ctx, &contact); err != nil {
			e.logError(ctx, "enrich", eris.Wrapf(err, "enrich: append contact for opportunity %d", o.ID))
		}
	}

	return report, nil
}
