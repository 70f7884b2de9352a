package model

import "time"

// RelationshipStage tracks where a contact sits in the connection sequence.
type RelationshipStage string

const (
	StageNewLead        RelationshipStage = "New Lead"
	StageConnectionSent RelationshipStage = "LinkedIn - Connection Sent"
	StageConnected      RelationshipStage = "LinkedIn - Connected"
	StageInConversation RelationshipStage = "In Conversation"
)

// Contact is a derived record produced when an opportunity yields a
// discovered email. The link back to the opportunity is a weak reference by
// event name only; a contact may outlive or duplicate its originating row.
type Contact struct {
	ID           int64             `json:"id"`
	Name         string            `json:"contact_name"`
	Title        string            `json:"title,omitempty"`
	Organization string            `json:"organization,omitempty"`
	Email        string            `json:"email,omitempty"`
	LinkedIn     string            `json:"linkedin,omitempty"`
	Phone        string            `json:"phone,omitempty"`
	EventRelated string            `json:"event_related,omitempty"`
	Stage        RelationshipStage `json:"relationship_stage"`
	LastContact  time.Time         `json:"last_contact,omitzero"`
	Notes        string            `json:"notes,omitempty"`
}
