package engine

import (
	"context"
	"fmt"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/seamlessly/outreach-cli/internal/model"
)

// FollowUpReport summarizes a follow-up run.
type FollowUpReport struct {
	Eligible  int
	Sent      int
	Exhausted int
}

// FollowUpAll sends a follow-up to every due record, up to the per-run
// cap. Each delivered follow-up increments the attempt count, stamps
// last_follow_up_date, and appends a Follow-Up Log entry; the attempt
// that reaches the configured maximum also promotes the record to No
// Response in the same save. Exhaustion is an outcome, not a failure.
func (e *Engine) FollowUpAll(ctx context.Context) (FollowUpReport, error) {
	log := zap.L().With(zap.String("workflow", "followup"))

	if e.mailer == nil {
		return FollowUpReport{}, eris.New("followup: mailer not configured")
	}

	opps, err := e.store.ListOpportunities(ctx)
	if err != nil {
		return FollowUpReport{}, eris.Wrap(err, "followup: list opportunities")
	}

	today := e.today()
	var eligible []model.Opportunity
	for _, o := range opps {
		if FollowUpEligible(o, today, e.limits.FollowUpIntervalDays, e.limits.MaxFollowUps) {
			eligible = append(eligible, o)
		}
	}
	report := FollowUpReport{Eligible: len(eligible)}

	for _, o := range capBatch(eligible, e.limits.FollowUps) {
		subject, body := followUpMessage(o)

		if sendErr := e.mailer.Send(ctx, o.OrganizerEmail, subject, body); sendErr != nil {
			e.logError(ctx, "followup", eris.Wrapf(sendErr, "followup: to %s", o.OrganizerEmail))
			continue
		}

		o.FollowUpCount++
		o.LastFollowUpDate = today
		if o.FollowUpCount >= e.limits.MaxFollowUps {
			o.Status = model.StatusNoResponse
			report.Exhausted++
		}
		if err := e.store.SaveOpportunity(ctx, o); err != nil {
			e.logError(ctx, "followup", eris.Wrapf(err, "followup: save opportunity %d", o.ID))
			continue
		}

		entry := model.FollowUpEntry{
			OpportunityID: o.ID,
			Sequence:      o.FollowUpCount,
			SentDate:      e.now(),
			Subject:       subject,
			Body:          body,
		}
		if err := e.store.AppendFollowUp(ctx, entry); err != nil {
			e.logError(ctx, "followup", eris.Wrapf(err, "followup: log opportunity %d", o.ID))
		}
		report.Sent++
		log.Info("sent follow-up",
			zap.Int64("id", o.ID),
			zap.Int("sequence", o.FollowUpCount),
			zap.String("status", string(o.Status)),
		)
	}

	return report, nil
}

func followUpMessage(o model.Opportunity) (subject, body string) {
	event := o.EventName
	if event == "" {
		event = "the event"
	}
	greeting := o.OrganizerName
	if greeting == "" {
		greeting = "there"
	}
	subject = fmt.Sprintf("Following up: Speaking at %s", event)
	body = fmt.Sprintf("Hi %s,\n\nI wanted to follow up on my previous email about speaking at %s. I'd love to find a time to discuss how we can add value for your audience.\n\nBest regards",
		greeting, event)
	return subject, body
}
