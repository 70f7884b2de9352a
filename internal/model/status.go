package model

// Status is the lifecycle stage label of an opportunity. Transitions are
// monotone forward; the engine never reverts a record to an earlier state.
type Status string

const (
	StatusNew          Status = "New"
	StatusHighPriority Status = "High Priority"
	StatusQualified    Status = "Qualified"
	StatusLowPriority  Status = "Low Priority"
	StatusDisqualify   Status = "Disqualify"
	StatusReadyToSend  Status = "Ready to Send"
	StatusContacted    Status = "Contacted"
	StatusInterested   Status = "Interested"
	StatusDeclined     Status = "Declined"
	StatusNoResponse   Status = "No Response"
	StatusSendFailed   Status = "Send Failed"
)

// Terminal reports whether the engine performs no further automatic
// transition from this status. Send Failed is not terminal: it is recoverable
// by operator correction, just never retried automatically.
func (s Status) Terminal() bool {
	switch s {
	case StatusInterested, StatusDeclined, StatusNoResponse, StatusDisqualify:
		return true
	}
	return false
}

// transitions encodes the forward edges of the status graph.
var transitions = map[Status][]Status{
	StatusNew:          {StatusHighPriority, StatusQualified, StatusLowPriority, StatusDisqualify},
	StatusHighPriority: {StatusReadyToSend},
	StatusQualified:    {StatusReadyToSend},
	StatusReadyToSend:  {StatusContacted, StatusSendFailed},
	// Contacted → Contacted covers response classifications that keep the
	// record in the outreach loop (needs_info, out_of_office, unrelated).
	StatusContacted: {StatusInterested, StatusDeclined, StatusNoResponse, StatusContacted},
}

// CanTransition reports whether the engine may move a record from one status
// to another. Re-entry of Send Failed into Ready to Send is an operator
// action outside this graph.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
