package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/seamlessly/outreach-cli/internal/model"
)

func TestScoreable(t *testing.T) {
	assert.True(t, Scoreable(model.Opportunity{}))

	zero := 0
	assert.False(t, Scoreable(model.Opportunity{QualityScore: &zero}), "zero score is still a score")
}

func TestEnrichable(t *testing.T) {
	tests := []struct {
		name  string
		email string
		url   string
		want  bool
	}{
		{"no email with url", "", "https://example.com", true},
		{"email already known", "a@b.com", "https://example.com", false},
		{"no url to scrape", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := model.Opportunity{OrganizerEmail: tt.email, URL: tt.url}
			assert.Equal(t, tt.want, Enrichable(o))
		})
	}
}

func TestPitchable(t *testing.T) {
	base := model.Opportunity{Status: model.StatusHighPriority}
	assert.True(t, Pitchable(base))

	qualified := base
	qualified.Status = model.StatusQualified
	assert.True(t, Pitchable(qualified))

	low := base
	low.Status = model.StatusLowPriority
	assert.False(t, Pitchable(low))

	contacted := base
	contacted.ContactedDate = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, Pitchable(contacted))

	pitched := base
	pitched.PitchSubject = "already written"
	assert.False(t, Pitchable(pitched))
}

func TestSendable(t *testing.T) {
	ready := model.Opportunity{
		Status:         model.StatusReadyToSend,
		PitchSubject:   "Speaking opportunity",
		OrganizerEmail: "org@example.com",
	}
	assert.True(t, Sendable(ready))

	noPitch := ready
	noPitch.PitchSubject = ""
	assert.False(t, Sendable(noPitch))

	noEmail := ready
	noEmail.OrganizerEmail = ""
	assert.False(t, Sendable(noEmail))

	contacted := ready
	contacted.Status = model.StatusContacted
	assert.False(t, Sendable(contacted))
}

func TestFollowUpEligibleBoundary(t *testing.T) {
	contacted := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	o := model.Opportunity{
		Status:        model.StatusContacted,
		ContactedDate: contacted,
	}

	// Eligible exactly when today >= contacted + 7 days, never before.
	for days := 0; days < 15; days++ {
		today := contacted.AddDate(0, 0, days)
		want := days >= 7
		assert.Equal(t, want, FollowUpEligible(o, today, 7, 3), "day offset %d", days)
	}
}

func TestFollowUpEligibleUsesMostRecentTouch(t *testing.T) {
	today := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	o := model.Opportunity{
		Status:           model.StatusContacted,
		ContactedDate:    today.AddDate(0, 0, -20),
		LastFollowUpDate: today.AddDate(0, 0, -3),
	}
	assert.False(t, FollowUpEligible(o, today, 7, 3), "recent follow-up resets the clock")

	o.LastFollowUpDate = today.AddDate(0, 0, -8)
	assert.True(t, FollowUpEligible(o, today, 7, 3))
}

func TestFollowUpEligibleExhaustedBudget(t *testing.T) {
	today := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	o := model.Opportunity{
		Status:        model.StatusContacted,
		ContactedDate: today.AddDate(0, 0, -30),
		FollowUpCount: 3,
	}
	assert.False(t, FollowUpEligible(o, today, 7, 3))
}

func TestFollowUpEligibleRequiresTouchDate(t *testing.T) {
	today := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	o := model.Opportunity{Status: model.StatusContacted}
	assert.False(t, FollowUpEligible(o, today, 7, 3))
}

func TestConnectEligible(t *testing.T) {
	assert.True(t, ConnectEligible(model.Contact{
		LinkedIn: "https://linkedin.com/in/x", Stage: model.StageNewLead,
	}))
	assert.False(t, ConnectEligible(model.Contact{Stage: model.StageNewLead}))
	assert.False(t, ConnectEligible(model.Contact{
		LinkedIn: "https://linkedin.com/in/x", Stage: model.StageConnectionSent,
	}))
}

func TestCapBatch(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{1, 2, 3}, capBatch(items, 3))
	assert.Equal(t, items, capBatch(items, 10))
	assert.Equal(t, items, capBatch(items, 0), "non-positive cap means unlimited")
	assert.Equal(t, items, capBatch(items, -1))
}
