package engine

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/seamlessly/outreach-cli/internal/model"
)

// PitchReport summarizes a pitch-writing run.
type PitchReport struct {
	Eligible int
	Written  int
}

// PitchAll generates pitch content for triaged, uncontacted records and
// promotes them to Ready to Send. A pitch missing any of subject, body, or
// topic is rejected and the record stays pitchable.
func (e *Engine) PitchAll(ctx context.Context) (PitchReport, error) {
	log := zap.L().With(zap.String("workflow", "pitch"))

	if e.generator == nil {
		return PitchReport{}, eris.New("pitch: generator not configured")
	}

	opps, err := e.store.ListOpportunities(ctx)
	if err != nil {
		return PitchReport{}, eris.Wrap(err, "pitch: list opportunities")
	}

	var eligible []model.Opportunity
	for _, o := range opps {
		if Pitchable(o) {
			eligible = append(eligible, o)
		}
	}
	report := PitchReport{Eligible: len(eligible)}

	for _, o := range capBatch(eligible, e.limits.Pitches) {
		pitch, genErr := e.generator.Generate(ctx, PitchRequest{
			EventName:     o.EventName,
			EventType:     string(o.EventType),
			OrganizerName: o.OrganizerName,
			AudienceType:  o.AudienceType,
		})
		if genErr != nil {
			e.logError(ctx, "pitch", eris.Wrapf(genErr, "pitch: generate for opportunity %d", o.ID))
			continue
		}
		if pitch.Subject == "" || pitch.Body == "" || pitch.Topic == "" {
			e.logError(ctx, "pitch", eris.Errorf("pitch: incomplete pitch for opportunity %d", o.ID))
			continue
		}

		o.PitchSubject = pitch.Subject
		o.PitchBody = pitch.Body
		o.RecommendedTopic = pitch.Topic
		o.Status = model.StatusReadyToSend
		if err := e.store.SaveOpportunity(ctx, o); err != nil {
			e.logError(ctx, "pitch", eris.Wrapf(err, "pitch: save opportunity %d", o.ID))
			continue
		}
		report.Written++
		log.Info("wrote pitch",
			zap.Int64("id", o.ID),
			zap.String("event", o.EventName),
			zap.String("topic", pitch.Topic),
		)
	}

	return report, nil
}
