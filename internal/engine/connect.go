package engine

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/seamlessly/outreach-cli/internal/model"
)

// ConnectionRequest is one prepared LinkedIn connection, queued for manual
// send. LinkedIn offers no sanctioned send API.
type ConnectionRequest struct {
	Name     string
	LinkedIn string
	Note     string
}

// ConnectReport summarizes a connection-sequence run.
type ConnectReport struct {
	Eligible int
	Prepared []ConnectionRequest
}

// ConnectAll prepares connection notes for new leads with a LinkedIn
// profile, up to the per-run cap, and advances their relationship stage.
// The prepared notes go to the operator for manual sending.
func (e *Engine) ConnectAll(ctx context.Context) (ConnectReport, error) {
	log := zap.L().With(zap.String("workflow", "connect"))

	if e.generator == nil {
		return ConnectReport{}, eris.New("connect: generator not configured")
	}

	contacts, err := e.store.ListContacts(ctx)
	if err != nil {
		return ConnectReport{}, eris.Wrap(err, "connect: list contacts")
	}

	var eligible []model.Contact
	for _, c := range contacts {
		if ConnectEligible(c) {
			eligible = append(eligible, c)
		}
	}
	report := ConnectReport{Eligible: len(eligible)}

	for _, c := range capBatch(eligible, e.limits.Connections) {
		name := c.Name
		if name == "" {
			name = c.Organization
		}

		note, genErr := e.generator.ConnectionNote(ctx, name, c.Organization)
		if genErr != nil {
			e.logError(ctx, "connect", eris.Wrapf(genErr, "connect: note for contact %d", c.ID))
			continue
		}

		c.Stage = model.StageConnectionSent
		c.LastContact = e.today()
		if err := e.store.SaveContact(ctx, c); err != nil {
			e.logError(ctx, "connect", eris.Wrapf(err, "connect: save contact %d", c.ID))
			continue
		}

		report.Prepared = append(report.Prepared, ConnectionRequest{
			Name:     name,
			LinkedIn: c.LinkedIn,
			Note:     note,
		})
		log.Info("prepared connection", zap.Int64("contact", c.ID), zap.String("linkedin", c.LinkedIn))
	}

	return report, nil
}
