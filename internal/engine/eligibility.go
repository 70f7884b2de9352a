package engine

import (
	"time"

	"github.com/seamlessly/outreach-cli/internal/model"
)

// Eligibility predicates. Pure functions over a record and the current
// date, recomputed from persisted state on every invocation so the engine
// stays stateless between runs and safe to re-invoke after a crash.

// Scoreable reports whether the record has never been scored. A zero score
// is a real score; only a missing one qualifies.
func Scoreable(o model.Opportunity) bool {
	return !o.Scored()
}

// Enrichable reports whether contact enrichment can act on the record:
// no organizer email yet, but a page to scrape.
func Enrichable(o model.Opportunity) bool {
	return o.OrganizerEmail == "" && o.URL != ""
}

// Pitchable reports whether pitch generation can act on the record:
// triaged into a priority bucket, never contacted, no pitch written yet.
func Pitchable(o model.Opportunity) bool {
	if o.Status != model.StatusHighPriority && o.Status != model.StatusQualified {
		return false
	}
	return o.ContactedDate.IsZero() && o.PitchSubject == ""
}

// Sendable reports whether outreach can act on the record.
func Sendable(o model.Opportunity) bool {
	return o.Status == model.StatusReadyToSend &&
		o.PitchSubject != "" &&
		o.OrganizerEmail != ""
}

// FollowUpEligible reports whether a contacted record is due for a
// follow-up: the most recent touch (contacted or last follow-up) is at
// least intervalDays old and the attempt budget is not exhausted.
func FollowUpEligible(o model.Opportunity, today time.Time, intervalDays, maxFollowUps int) bool {
	if o.Status != model.StatusContacted {
		return false
	}
	if o.FollowUpCount >= maxFollowUps {
		return false
	}
	last := o.LastTouch()
	if last.IsZero() {
		return false
	}
	cutoff := today.AddDate(0, 0, -intervalDays)
	return !last.After(cutoff)
}

// ConnectEligible reports whether the connection sequence can act on a
// contact: a LinkedIn profile is known and no outreach has started.
func ConnectEligible(c model.Contact) bool {
	return c.LinkedIn != "" && c.Stage == model.StageNewLead
}
