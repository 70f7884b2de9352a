package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/seamlessly/outreach-cli/internal/model"
)

// Scan and argument helpers shared by the SQLite and Postgres backends.
// Both store dates as YYYY-MM-DD text where the empty string means absent,
// so the typed model never sees storage quirks.

type scannable interface {
	Scan(dest ...any) error
}

func scanOpportunity(row scannable) (*model.Opportunity, error) {
	var o model.Opportunity
	var qualityScore sql.NullInt64
	var discovered, contacted, lastFollowUp, responded string

	err := row.Scan(&o.ID, &o.EventName, &o.EventType, &o.EventDate, &o.Location,
		&o.URL, &o.Description, &o.OrganizerName, &o.OrganizerEmail,
		&o.OrganizerLinkedIn, &o.OrganizerTitle, &o.AudienceSize, &o.AudienceType,
		&o.Status, &qualityScore, &o.Source, &discovered, &contacted,
		&o.CFPDeadline, &o.SubmissionRequirements, &o.PitchSubject, &o.PitchBody,
		&o.RecommendedTopic, &o.FollowUpCount, &lastFollowUp, &responded, &o.Notes)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrap(err, "store: scan opportunity")
	}

	if qualityScore.Valid {
		score := int(qualityScore.Int64)
		o.QualityScore = &score
	}
	o.DiscoveredDate = parseDate(discovered)
	o.ContactedDate = parseDate(contacted)
	o.LastFollowUpDate = parseDate(lastFollowUp)
	o.RespondedDate = parseDate(responded)
	return &o, nil
}

func opportunityArgs(o model.Opportunity) []any {
	var qualityScore any
	if o.QualityScore != nil {
		qualityScore = *o.QualityScore
	}
	return []any{
		o.EventName, string(o.EventType), o.EventDate, o.Location, o.URL,
		o.Description, o.OrganizerName, o.OrganizerEmail, o.OrganizerLinkedIn,
		o.OrganizerTitle, o.AudienceSize, o.AudienceType, string(o.Status),
		qualityScore, o.Source, formatDate(o.DiscoveredDate),
		formatDate(o.ContactedDate), o.CFPDeadline, o.SubmissionRequirements,
		o.PitchSubject, o.PitchBody, o.RecommendedTopic, o.FollowUpCount,
		formatDate(o.LastFollowUpDate), formatDate(o.RespondedDate), o.Notes,
	}
}

func entryID(id string) string {
	if id != "" {
		return id
	}
	return uuid.New().String()
}

const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
