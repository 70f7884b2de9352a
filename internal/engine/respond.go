package engine

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/seamlessly/outreach-cli/internal/model"
)

// maxSnippetLen caps response log snippets.
const maxSnippetLen = 1000

// Classifications accepted by Classify.
const (
	ClassInterested    = "interested"
	ClassNotInterested = "not_interested"
	ClassNeedsInfo     = "needs_info"
	ClassOutOfOffice   = "out_of_office"
	ClassUnrelated     = "unrelated"
)

// classificationStatus maps a reply classification to the record's next
// status. Anything that is not a clear yes or no keeps the record in the
// outreach loop.
var classificationStatus = map[string]model.Status{
	ClassInterested:    model.StatusInterested,
	ClassNotInterested: model.StatusDeclined,
	ClassNeedsInfo:     model.StatusContacted,
	ClassOutOfOffice:   model.StatusContacted,
	ClassUnrelated:     model.StatusContacted,
}

// Classify applies a reply classification to one opportunity: status,
// responded_date, a capped note, and a Response Log entry. An unknown
// identifier is a hard error (store.ErrNotFound) because the caller
// supplied a bad key and no batch is in progress.
func (e *Engine) Classify(ctx context.Context, id int64, classification, snippet string) error {
	classification = strings.ToLower(strings.TrimSpace(classification))
	newStatus, ok := classificationStatus[classification]
	if !ok {
		newStatus = model.StatusContacted
	}

	o, err := e.store.GetOpportunity(ctx, id)
	if err != nil {
		return eris.Wrapf(err, "respond: opportunity %d", id)
	}

	o.Status = newStatus
	o.RespondedDate = e.today()
	if snippet != "" {
		o.AppendNote("Response: " + snippet)
	}
	if err := e.store.SaveOpportunity(ctx, *o); err != nil {
		return eris.Wrapf(err, "respond: save opportunity %d", id)
	}

	entry := model.ResponseEntry{
		OpportunityID:  id,
		ResponseDate:   e.now(),
		Classification: classification,
		Snippet:        truncate(snippet, maxSnippetLen),
	}
	if err := e.store.AppendResponse(ctx, entry); err != nil {
		return eris.Wrapf(err, "respond: log opportunity %d", id)
	}

	zap.L().Info("classified response",
		zap.Int64("id", id),
		zap.String("classification", classification),
		zap.String("status", string(newStatus)),
	)
	return nil
}
