package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/seamlessly/outreach-cli/internal/model"
)

// Pool is the subset of pgxpool.Pool used by PostgresStore. pgxmock
// satisfies it in tests.
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: connect")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

// NewPostgresFromPool wraps an existing pool (used by tests).
func NewPostgresFromPool(pool Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS opportunities (
	id                      BIGSERIAL PRIMARY KEY,
	event_name              TEXT NOT NULL,
	event_type              TEXT NOT NULL DEFAULT '',
	event_date              TEXT NOT NULL DEFAULT '',
	location                TEXT NOT NULL DEFAULT '',
	url                     TEXT NOT NULL DEFAULT '',
	description             TEXT NOT NULL DEFAULT '',
	organizer_name          TEXT NOT NULL DEFAULT '',
	organizer_email         TEXT NOT NULL DEFAULT '',
	organizer_linkedin      TEXT NOT NULL DEFAULT '',
	organizer_title         TEXT NOT NULL DEFAULT '',
	audience_size           INTEGER NOT NULL DEFAULT 0,
	audience_type           TEXT NOT NULL DEFAULT '',
	status                  TEXT NOT NULL DEFAULT 'New',
	quality_score           INTEGER,
	source                  TEXT NOT NULL DEFAULT '',
	discovered_date         TEXT NOT NULL DEFAULT '',
	contacted_date          TEXT NOT NULL DEFAULT '',
	cfp_deadline            TEXT NOT NULL DEFAULT '',
	submission_requirements TEXT NOT NULL DEFAULT '',
	pitch_subject           TEXT NOT NULL DEFAULT '',
	pitch_body              TEXT NOT NULL DEFAULT '',
	recommended_topic       TEXT NOT NULL DEFAULT '',
	follow_up_count         INTEGER NOT NULL DEFAULT 0,
	last_follow_up_date     TEXT NOT NULL DEFAULT '',
	responded_date          TEXT NOT NULL DEFAULT '',
	notes                   TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS contacts (
	id                 BIGSERIAL PRIMARY KEY,
	contact_name       TEXT NOT NULL DEFAULT '',
	title              TEXT NOT NULL DEFAULT '',
	organization       TEXT NOT NULL DEFAULT '',
	email              TEXT NOT NULL DEFAULT '',
	linkedin           TEXT NOT NULL DEFAULT '',
	phone              TEXT NOT NULL DEFAULT '',
	event_related      TEXT NOT NULL DEFAULT '',
	relationship_stage TEXT NOT NULL DEFAULT 'New Lead',
	last_contact       TEXT NOT NULL DEFAULT '',
	notes              TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS error_log (
	id        TEXT PRIMARY KEY,
	workflow  TEXT NOT NULL,
	message   TEXT NOT NULL,
	timestamp TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS follow_up_log (
	id               TEXT PRIMARY KEY,
	opportunity_id   BIGINT NOT NULL,
	follow_up_number INTEGER NOT NULL,
	sent_date        TEXT NOT NULL,
	email_subject    TEXT NOT NULL,
	email_body       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS response_log (
	id             TEXT PRIMARY KEY,
	opportunity_id BIGINT NOT NULL,
	response_date  TEXT NOT NULL,
	classification TEXT NOT NULL,
	email_snippet  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS speaking_assets (
	id              TEXT PRIMARY KEY,
	topic_title     TEXT NOT NULL,
	one_liner       TEXT NOT NULL DEFAULT '',
	target_audience TEXT NOT NULL DEFAULT '',
	key_takeaways   TEXT NOT NULL DEFAULT '',
	talk_length     TEXT NOT NULL DEFAULT '',
	past_delivery   TEXT NOT NULL DEFAULT '',
	video_link      TEXT NOT NULL DEFAULT '',
	created_date    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_opportunities_status ON opportunities(status);
CREATE INDEX IF NOT EXISTS idx_contacts_stage ON contacts(relationship_stage);
CREATE INDEX IF NOT EXISTS idx_follow_up_log_opportunity ON follow_up_log(opportunity_id);
CREATE INDEX IF NOT EXISTS idx_response_log_opportunity ON response_log(opportunity_id);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) ListOpportunities(ctx context.Context) ([]model.Opportunity, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+opportunityColumns+` FROM opportunities ORDER BY id ASC`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list opportunities")
	}
	defer rows.Close()

	var opps []model.Opportunity
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, err
		}
		opps = append(opps, *o)
	}
	return opps, eris.Wrap(rows.Err(), "postgres: list opportunities iterate")
}

func (s *PostgresStore) GetOpportunity(ctx context.Context, id int64) (*model.Opportunity, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+opportunityColumns+` FROM opportunities WHERE id = $1`, id)
	o, err := scanOpportunityPgx(row)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (s *PostgresStore) CreateOpportunity(ctx context.Context, o *model.Opportunity) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO opportunities (
			event_name, event_type, event_date, location, url, description,
			organizer_name, organizer_email, organizer_linkedin, organizer_title,
			audience_size, audience_type, status, quality_score, source,
			discovered_date, contacted_date, cfp_deadline, submission_requirements,
			pitch_subject, pitch_body, recommended_topic, follow_up_count,
			last_follow_up_date, responded_date, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
		RETURNING id`,
		opportunityArgs(*o)...,
	).Scan(&o.ID)
	return eris.Wrap(err, "postgres: insert opportunity")
}

func (s *PostgresStore) SaveOpportunity(ctx context.Context, o model.Opportunity) error {
	args := opportunityArgs(o)
	args = append(args, o.ID)
	tag, err := s.pool.Exec(ctx,
		`UPDATE opportunities SET
			event_name = $1, event_type = $2, event_date = $3, location = $4,
			url = $5, description = $6, organizer_name = $7, organizer_email = $8,
			organizer_linkedin = $9, organizer_title = $10, audience_size = $11,
			audience_type = $12, status = $13, quality_score = $14, source = $15,
			discovered_date = $16, contacted_date = $17, cfp_deadline = $18,
			submission_requirements = $19, pitch_subject = $20, pitch_body = $21,
			recommended_topic = $22, follow_up_count = $23,
			last_follow_up_date = $24, responded_date = $25, notes = $26
		WHERE id = $27`,
		args...,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: save opportunity %d", o.ID)
	}
	if tag.RowsAffected() == 0 {
		return eris.Wrapf(ErrNotFound, "postgres: opportunity %d", o.ID)
	}
	return nil
}

func (s *PostgresStore) ListContacts(ctx context.Context) ([]model.Contact, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, contact_name, title, organization, email, linkedin, phone,
			event_related, relationship_stage, last_contact, notes
		FROM contacts ORDER BY id ASC`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list contacts")
	}
	defer rows.Close()

	var contacts []model.Contact
	for rows.Next() {
		var c model.Contact
		var lastContact string
		if err := rows.Scan(&c.ID, &c.Name, &c.Title, &c.Organization, &c.Email,
			&c.LinkedIn, &c.Phone, &c.EventRelated, &c.Stage, &lastContact, &c.Notes); err != nil {
			return nil, eris.Wrap(err, "postgres: scan contact")
		}
		c.LastContact = parseDate(lastContact)
		contacts = append(contacts, c)
	}
	return contacts, eris.Wrap(rows.Err(), "postgres: list contacts iterate")
}

func (s *PostgresStore) AppendContact(ctx context.Context, c *model.Contact) error {
	if c.Stage == "" {
		c.Stage = model.StageNewLead
	}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO contacts (contact_name, title, organization, email, linkedin,
			phone, event_related, relationship_stage, last_contact, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		c.Name, c.Title, c.Organization, c.Email, c.LinkedIn, c.Phone,
		c.EventRelated, string(c.Stage), formatDate(c.LastContact), c.Notes,
	).Scan(&c.ID)
	return eris.Wrap(err, "postgres: append contact")
}

func (s *PostgresStore) SaveContact(ctx context.Context, c model.Contact) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE contacts SET contact_name = $1, title = $2, organization = $3,
			email = $4, linkedin = $5, phone = $6, event_related = $7,
			relationship_stage = $8, last_contact = $9, notes = $10
		WHERE id = $11`,
		c.Name, c.Title, c.Organization, c.Email, c.LinkedIn, c.Phone,
		c.EventRelated, string(c.Stage), formatDate(c.LastContact), c.Notes, c.ID,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: save contact %d", c.ID)
	}
	if tag.RowsAffected() == 0 {
		return eris.Wrapf(ErrNotFound, "postgres: contact %d", c.ID)
	}
	return nil
}

func (s *PostgresStore) AppendErrorLog(ctx context.Context, e model.ErrorEntry) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO error_log (id, workflow, message, timestamp) VALUES ($1, $2, $3, $4)`,
		entryID(e.ID), e.Workflow, e.Message, e.Timestamp.UTC(),
	)
	return eris.Wrap(err, "postgres: append error log")
}

func (s *PostgresStore) AppendFollowUp(ctx context.Context, e model.FollowUpEntry) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO follow_up_log (id, opportunity_id, follow_up_number, sent_date, email_subject, email_body)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		entryID(e.ID), e.OpportunityID, e.Sequence, formatDate(e.SentDate), e.Subject, e.Body,
	)
	return eris.Wrap(err, "postgres: append follow-up log")
}

func (s *PostgresStore) AppendResponse(ctx context.Context, e model.ResponseEntry) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO response_log (id, opportunity_id, response_date, classification, email_snippet)
		VALUES ($1, $2, $3, $4, $5)`,
		entryID(e.ID), e.OpportunityID, formatDate(e.ResponseDate), e.Classification, e.Snippet,
	)
	return eris.Wrap(err, "postgres: append response log")
}

func (s *PostgresStore) AppendAsset(ctx context.Context, a model.SpeakingAsset) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO speaking_assets (id, topic_title, one_liner, target_audience,
			key_takeaways, talk_length, past_delivery, video_link, created_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		entryID(a.ID), a.TopicTitle, a.OneLiner, a.TargetAudience, a.KeyTakeaways,
		a.TalkLength, a.PastDelivery, a.VideoLink, formatDate(a.CreatedDate),
	)
	return eris.Wrap(err, "postgres: append speaking asset")
}

// scanOpportunityPgx mirrors scanOpportunity but maps pgx.ErrNoRows.
func scanOpportunityPgx(row pgx.Row) (*model.Opportunity, error) {
	o, err := scanOpportunity(row)
	if err != nil && errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return o, err
}
