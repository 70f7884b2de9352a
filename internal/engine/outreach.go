package engine

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/seamlessly/outreach-cli/internal/model"
)

// SendReport summarizes an outreach run.
type SendReport struct {
	Eligible int
	Sent     int
	Failed   int
}

// SendAll delivers the pitch for every Ready to Send record, up to the
// per-run cap. A successful send moves the record to Contacted and stamps
// contacted_date; a failed send moves it to Send Failed and appends an
// error log entry. Either way the batch continues: one bad address never
// blocks the rest.
func (e *Engine) SendAll(ctx context.Context) (SendReport, error) {
	log := zap.L().With(zap.String("workflow", "send"))

	if e.mailer == nil {
		return SendReport{}, eris.New("send: mailer not configured")
	}

	opps, err := e.store.ListOpportunities(ctx)
	if err != nil {
		return SendReport{}, eris.Wrap(err, "send: list opportunities")
	}

	var eligible []model.Opportunity
	for _, o := range opps {
		if Sendable(o) {
			eligible = append(eligible, o)
		}
	}
	report := SendReport{Eligible: len(eligible)}

	for _, o := range capBatch(eligible, e.limits.Sends) {
		// Re-check defensively; the record may look different than it did
		// when the predicate ran.
		if o.PitchSubject == "" || o.OrganizerEmail == "" {
			continue
		}

		if sendErr := e.mailer.Send(ctx, o.OrganizerEmail, o.PitchSubject, o.PitchBody); sendErr != nil {
			o.Status = model.StatusSendFailed
			if err := e.store.SaveOpportunity(ctx, o); err != nil {
				e.logError(ctx, "send", eris.Wrapf(err, "send: mark opportunity %d failed", o.ID))
			}
			e.logError(ctx, "send", eris.Wrapf(sendErr, "send: to %s", o.OrganizerEmail))
			report.Failed++
			continue
		}

		o.Status = model.StatusContacted
		o.ContactedDate = e.today()
		if err := e.store.SaveOpportunity(ctx, o); err != nil {
			e.logError(ctx, "send", eris.Wrapf(err, "send: save opportunity %d", o.ID))
			continue
		}
		report.Sent++
		log.Info("sent outreach",
			zap.Int64("id", o.ID),
			zap.String("event", o.EventName),
			zap.String("to", o.OrganizerEmail),
		)
	}

	return report, nil
}
