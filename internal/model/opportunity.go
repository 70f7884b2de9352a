package model

import (
	"strings"
	"time"
)

// EventType categorizes a speaking opportunity by venue kind.
type EventType string

const (
	EventConference  EventType = "Conference"
	EventUniversity  EventType = "University"
	EventPodcast     EventType = "Podcast"
	EventAssociation EventType = "Association"
)

// MaxNoteLen caps a single appended note. Longer text is truncated, never
// rejected, so a malformed reply snippet cannot fail a row update.
const MaxNoteLen = 500

// Opportunity is the central entity: one row per discovered speaking prospect.
// It is created by a discovery stage with StatusNew and mutated in place by
// every later stage; rows are never deleted, terminal statuses only.
type Opportunity struct {
	ID                     int64     `json:"id"`
	EventName              string    `json:"event_name"`
	EventType              EventType `json:"event_type"`
	EventDate              string    `json:"event_date,omitempty"`
	Location               string    `json:"location,omitempty"`
	URL                    string    `json:"url,omitempty"`
	Description            string    `json:"description,omitempty"`
	OrganizerName          string    `json:"organizer_name,omitempty"`
	OrganizerEmail         string    `json:"organizer_email,omitempty"`
	OrganizerLinkedIn      string    `json:"organizer_linkedin,omitempty"`
	OrganizerTitle         string    `json:"organizer_title,omitempty"`
	AudienceSize           int       `json:"audience_size,omitempty"`
	AudienceType           string    `json:"audience_type,omitempty"`
	Status                 Status    `json:"status"`
	QualityScore           *int      `json:"quality_score,omitempty"`
	Source                 string    `json:"source,omitempty"`
	DiscoveredDate         time.Time `json:"discovered_date,omitzero"`
	ContactedDate          time.Time `json:"contacted_date,omitzero"`
	CFPDeadline            string    `json:"cfp_deadline,omitempty"`
	SubmissionRequirements string    `json:"submission_requirements,omitempty"`
	PitchSubject           string    `json:"pitch_subject,omitempty"`
	PitchBody              string    `json:"pitch_body,omitempty"`
	RecommendedTopic       string    `json:"recommended_topic,omitempty"`
	FollowUpCount          int       `json:"follow_up_count"`
	LastFollowUpDate       time.Time `json:"last_follow_up_date,omitzero"`
	RespondedDate          time.Time `json:"responded_date,omitzero"`
	Notes                  string    `json:"notes,omitempty"`
}

// Scored reports whether a quality score has been assigned. A score of zero
// still counts as scored; only a nil score means "not yet evaluated".
func (o *Opportunity) Scored() bool {
	return o.QualityScore != nil
}

// AppendNote appends a line to the free-text notes field, truncating the new
// note to MaxNoteLen. Notes are append-only; existing text is never rewritten.
func (o *Opportunity) AppendNote(note string) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}
	if len(note) > MaxNoteLen {
		note = note[:MaxNoteLen]
	}
	if o.Notes == "" {
		o.Notes = note
		return
	}
	o.Notes += "\n" + note
}

// LastTouch returns the most recent of contacted_date and last_follow_up_date,
// the reference point for follow-up eligibility.
func (o *Opportunity) LastTouch() time.Time {
	if o.LastFollowUpDate.After(o.ContactedDate) {
		return o.LastFollowUpDate
	}
	return o.ContactedDate
}
