// Package store persists the opportunity table and its append-only audit
// tables. Two backends are provided: SQLite (default) and Postgres.
//
// Saves are blind row-level overwrites by design: concurrent stage runs may
// interleave and the last writer wins. Eligibility is always re-evaluated
// from persisted state at read time, so a rare double-send caused by a race
// is an accepted degradation, not a correctness violation the store guards
// against.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/seamlessly/outreach-cli/internal/model"
)

// ErrNotFound is returned when a targeted record does not exist.
var ErrNotFound = eris.New("record not found")

// ErrConflict is returned when the underlying table no longer matches the
// expected column contract (renamed or missing columns on import, dropped
// rows under a save).
var ErrConflict = eris.New("record store conflict")

// Store is the persistence contract shared by every stage. Opportunity rows
// are mutated in place and never deleted; the Append* tables only ever grow.
type Store interface {
	// ListOpportunities returns every opportunity ordered by ascending ID.
	// Stages filter this list through eligibility predicates; ordering is
	// stable so rate-limited batches are reproducible.
	ListOpportunities(ctx context.Context) ([]model.Opportunity, error)

	// GetOpportunity returns one opportunity or ErrNotFound.
	GetOpportunity(ctx context.Context, id int64) (*model.Opportunity, error)

	// CreateOpportunity inserts a new row and assigns the next monotonically
	// increasing ID on the passed record.
	CreateOpportunity(ctx context.Context, o *model.Opportunity) error

	// SaveOpportunity persists the full current field set of one row.
	// Returns ErrNotFound if the row has vanished.
	SaveOpportunity(ctx context.Context, o model.Opportunity) error

	// Contacts.
	ListContacts(ctx context.Context) ([]model.Contact, error)
	AppendContact(ctx context.Context, c *model.Contact) error
	SaveContact(ctx context.Context, c model.Contact) error

	// Append-only audit tables.
	AppendErrorLog(ctx context.Context, e model.ErrorEntry) error
	AppendFollowUp(ctx context.Context, e model.FollowUpEntry) error
	AppendResponse(ctx context.Context, e model.ResponseEntry) error
	AppendAsset(ctx context.Context, a model.SpeakingAsset) error

	// Lifecycle.
	Migrate(ctx context.Context) error
	Close() error
}
