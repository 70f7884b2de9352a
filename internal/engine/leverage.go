package engine

import (
	"context"
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/seamlessly/outreach-cli/internal/model"
)

// Engagement describes a completed speaking engagement to leverage.
type Engagement struct {
	EventName      string
	EventDate      string
	OrganizerName  string
	OrganizerEmail string
}

// ThankYouDraft is the post-event email the operator sends manually.
type ThankYouDraft struct {
	To      string
	Subject string
	Body    string
}

// Leverage records a completed engagement as a speaking asset and drafts
// the thank-you email.
func (e *Engine) Leverage(ctx context.Context, eng Engagement) (*ThankYouDraft, error) {
	if eng.EventName == "" {
		eng.EventName = "Recent Speaking Engagement"
	}
	if eng.EventDate == "" {
		eng.EventDate = e.today().Format("2006-01-02")
	}
	if eng.OrganizerName == "" {
		eng.OrganizerName = "Organizer"
	}

	asset := model.SpeakingAsset{
		TopicTitle:     eng.EventName,
		OneLiner:       fmt.Sprintf("Post-event recap and follow-up for %s", eng.EventName),
		TargetAudience: "Event attendees and organizer",
		KeyTakeaways:   "Thank-you sent; LinkedIn recap drafted",
		PastDelivery:   eng.EventDate,
		CreatedDate:    e.now(),
	}
	if err := e.store.AppendAsset(ctx, asset); err != nil {
		return nil, eris.Wrap(err, "leverage: append asset")
	}

	return &ThankYouDraft{
		To:      eng.OrganizerEmail,
		Subject: fmt.Sprintf("Thank you - %s", eng.EventName),
		Body: fmt.Sprintf("Hi %s, Thank you for having me at %s on %s. I enjoyed connecting with the audience. Best regards",
			eng.OrganizerName, eng.EventName, eng.EventDate),
	}, nil
}
