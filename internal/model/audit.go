package model

import "time"

// Audit rows are append-only: created once, never mutated, never read back by
// the engine. They exist purely for operator traceability.

// ErrorEntry records a per-record failure inside a batch run.
type ErrorEntry struct {
	ID        string    `json:"id"`
	Workflow  string    `json:"workflow"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// FollowUpEntry records one delivered follow-up message.
type FollowUpEntry struct {
	ID            string    `json:"id"`
	OpportunityID int64     `json:"opportunity_id"`
	Sequence      int       `json:"follow_up_number"`
	SentDate      time.Time `json:"sent_date"`
	Subject       string    `json:"email_subject"`
	Body          string    `json:"email_body"`
}

// ResponseEntry records one classified organizer reply.
type ResponseEntry struct {
	ID             string    `json:"id"`
	OpportunityID  int64     `json:"opportunity_id"`
	ResponseDate   time.Time `json:"response_date"`
	Classification string    `json:"classification"`
	Snippet        string    `json:"email_snippet"`
}

// SpeakingAsset is a reusable artifact produced after a delivered engagement.
type SpeakingAsset struct {
	ID             string    `json:"id"`
	TopicTitle     string    `json:"topic_title"`
	OneLiner       string    `json:"one_liner,omitempty"`
	TargetAudience string    `json:"target_audience,omitempty"`
	KeyTakeaways   string    `json:"key_takeaways,omitempty"`
	TalkLength     string    `json:"talk_length,omitempty"`
	PastDelivery   string    `json:"past_delivery,omitempty"`
	VideoLink      string    `json:"video_link,omitempty"`
	CreatedDate    time.Time `json:"created_date"`
}
