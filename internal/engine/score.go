package engine

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/seamlessly/outreach-cli/internal/model"
	"github.com/seamlessly/outreach-cli/internal/scorer"
)

// ScoreReport summarizes a scoring run.
type ScoreReport struct {
	Evaluated int
	Scored    int
}

// ScoreAll scores every unscored opportunity and moves it into its triage
// bucket. Scoring is one-shot: a record that already carries a score is
// never recomputed, so re-running the stage is a no-op for scored records.
func (e *Engine) ScoreAll(ctx context.Context) (ScoreReport, error) {
	log := zap.L().With(zap.String("workflow", "score"))

	opps, err := e.store.ListOpportunities(ctx)
	if err != nil {
		return ScoreReport{}, eris.Wrap(err, "score: list opportunities")
	}

	var report ScoreReport
	for _, o := range opps {
		report.Evaluated++
		if !Scoreable(o) {
			continue
		}

		res := scorer.Score(o)
		score := res.Score
		o.QualityScore = &score
		if model.CanTransition(o.Status, res.Status) {
			o.Status = res.Status
		} else {
			// Record drifted past New without a score; keep its status.
			log.Warn("score would move status backward, keeping current",
				zap.Int64("id", o.ID),
				zap.String("status", string(o.Status)),
			)
		}

		if err := e.store.SaveOpportunity(ctx, o); err != nil {
			e.logError(ctx, "score", eris.Wrapf(err, "score: save opportunity %d", o.ID))
			continue
		}
		report.Scored++
		log.Info("scored opportunity",
			zap.Int64("id", o.ID),
			zap.String("event", o.EventName),
			zap.Int("score", score),
			zap.String("status", string(o.Status)),
		)
	}

	return report, nil
}
