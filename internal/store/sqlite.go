package store

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/seamlessly/outreach-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS opportunities (
	id                      INTEGER PRIMARY KEY AUTOINCREMENT,
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
	id                 INTEGER PRIMARY KEY AUTOINCREMENT,
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
	timestamp DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS follow_up_log (
	id               TEXT PRIMARY KEY,
	opportunity_id   INTEGER NOT NULL,
	follow_up_number INTEGER NOT NULL,
	sent_date        TEXT NOT NULL,
	email_subject    TEXT NOT NULL,
	email_body       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS response_log (
	id             TEXT PRIMARY KEY,
	opportunity_id INTEGER NOT NULL,
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

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

const opportunityColumns = `id, event_name, event_type, event_date, location, url, description,
	organizer_name, organizer_email, organizer_linkedin, organizer_title,
	audience_size, audience_type, status, quality_score, source,
	discovered_date, contacted_date, cfp_deadline, submission_requirements,
	pitch_subject, pitch_body, recommended_topic, follow_up_count,
	last_follow_up_date, responded_date, notes`

func (s *SQLiteStore) ListOpportunities(ctx context.Context) ([]model.Opportunity, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+opportunityColumns+` FROM opportunities ORDER BY id ASC`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list opportunities")
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
	return opps, eris.Wrap(rows.Err(), "sqlite: list opportunities iterate")
}

func (s *SQLiteStore) GetOpportunity(ctx context.Context, id int64) (*model.Opportunity, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+opportunityColumns+` FROM opportunities WHERE id = ?`, id)
	o, err := scanOpportunity(row)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (s *SQLiteStore) CreateOpportunity(ctx context.Context, o *model.Opportunity) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO opportunities (
			event_name, event_type, event_date, location, url, description,
			organizer_name, organizer_email, organizer_linkedin, organizer_title,
			audience_size, audience_type, status, quality_score, source,
			discovered_date, contacted_date, cfp_deadline, submission_requirements,
			pitch_subject, pitch_body, recommended_topic, follow_up_count,
			last_follow_up_date, responded_date, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		opportunityArgs(*o)...,
	)
	if err != nil {
		return eris.Wrap(err, "sqlite: insert opportunity")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return eris.Wrap(err, "sqlite: last insert id")
	}
	o.ID = id
	return nil
}

func (s *SQLiteStore) SaveOpportunity(ctx context.Context, o model.Opportunity) error {
	args := opportunityArgs(o)
	args = append(args, o.ID)
	res, err := s.db.ExecContext(ctx,
		`UPDATE opportunities SET
			event_name = ?, event_type = ?, event_date = ?, location = ?, url = ?,
			description = ?, organizer_name = ?, organizer_email = ?,
			organizer_linkedin = ?, organizer_title = ?, audience_size = ?,
			audience_type = ?, status = ?, quality_score = ?, source = ?,
			discovered_date = ?, contacted_date = ?, cfp_deadline = ?,
			submission_requirements = ?, pitch_subject = ?, pitch_body = ?,
			recommended_topic = ?, follow_up_count = ?, last_follow_up_date = ?,
			responded_date = ?, notes = ?
		WHERE id = ?`,
		args...,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: save opportunity %d", o.ID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "sqlite: rows affected")
	}
	if n == 0 {
		return eris.Wrapf(ErrNotFound, "sqlite: opportunity %d", o.ID)
	}
	return nil
}

func (s *SQLiteStore) ListContacts(ctx context.Context) ([]model.Contact, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, contact_name, title, organization, email, linkedin, phone,
			event_related, relationship_stage, last_contact, notes
		FROM contacts ORDER BY id ASC`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list contacts")
	}
	defer rows.Close()

	var contacts []model.Contact
	for rows.Next() {
		var c model.Contact
		var lastContact string
		if err := rows.Scan(&c.ID, &c.Name, &c.Title, &c.Organization, &c.Email,
			&c.LinkedIn, &c.Phone, &c.EventRelated, &c.Stage, &lastContact, &c.Notes); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan contact")
		}
		c.LastContact = parseDate(lastContact)
		contacts = append(contacts, c)
	}
	return contacts, eris.Wrap(rows.Err(), "sqlite: list contacts iterate")
}

func (s *SQLiteStore) AppendContact(ctx context.Context, c *model.Contact) error {
	if c.Stage == "" {
		c.Stage = model.StageNewLead
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO contacts (contact_name, title, organization, email, linkedin,
			phone, event_related, relationship_stage, last_contact, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Name, c.Title, c.Organization, c.Email, c.LinkedIn, c.Phone,
		c.EventRelated, string(c.Stage), formatDate(c.LastContact), c.Notes,
	)
	if err != nil {
		return eris.Wrap(err, "sqlite: append contact")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return eris.Wrap(err, "sqlite: last insert id")
	}
	c.ID = id
	return nil
}

func (s *SQLiteStore) SaveContact(ctx context.Context, c model.Contact) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE contacts SET contact_name = ?, title = ?, organization = ?,
			email = ?, linkedin = ?, phone = ?, event_related = ?,
			relationship_stage = ?, last_contact = ?, notes = ?
		WHERE id = ?`,
		c.Name, c.Title, c.Organization, c.Email, c.LinkedIn, c.Phone,
		c.EventRelated, string(c.Stage), formatDate(c.LastContact), c.Notes, c.ID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: save contact %d", c.ID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "sqlite: rows affected")
	}
	if n == 0 {
		return eris.Wrapf(ErrNotFound, "sqlite: contact %d", c.ID)
	}
	return nil
}

func (s *SQLiteStore) AppendErrorLog(ctx context.Context, e model.ErrorEntry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO error_log (id, workflow, message, timestamp) VALUES (?, ?, ?, ?)`,
		entryID(e.ID), e.Workflow, e.Message, e.Timestamp.UTC(),
	)
	return eris.Wrap(err, "sqlite: append error log")
}

func (s *SQLiteStore) AppendFollowUp(ctx context.Context, e model.FollowUpEntry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO follow_up_log (id, opportunity_id, follow_up_number, sent_date, email_subject, email_body)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entryID(e.ID), e.OpportunityID, e.Sequence, formatDate(e.SentDate), e.Subject, e.Body,
	)
	return eris.Wrap(err, "sqlite: append follow-up log")
}

func (s *SQLiteStore) AppendResponse(ctx context.Context, e model.ResponseEntry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO response_log (id, opportunity_id, response_date, classification, email_snippet)
		VALUES (?, ?, ?, ?, ?)`,
		entryID(e.ID), e.OpportunityID, formatDate(e.ResponseDate), e.Classification, e.Snippet,
	)
	return eris.Wrap(err, "sqlite: append response log")
}

func (s *SQLiteStore) AppendAsset(ctx context.Context, a model.SpeakingAsset) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO speaking_assets (id, topic_title, one_liner, target_audience,
			key_takeaways, talk_length, past_delivery, video_link, created_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entryID(a.ID), a.TopicTitle, a.OneLiner, a.TargetAudience, a.KeyTakeaways,
		a.TalkLength, a.PastDelivery, a.VideoLink, formatDate(a.CreatedDate),
	)
	return eris.Wrap(err, "sqlite: append speaking asset")
}
