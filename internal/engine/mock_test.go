package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/seamlessly/outreach-cli/internal/model"
	"github.com/seamlessly/outreach-cli/internal/store"
)

// memStore is an in-memory store.Store for engine tests.
type memStore struct {
	mu        sync.Mutex
	nextID    int64
	opps      []model.Opportunity
	contacts  []model.Contact
	errorLog  []model.ErrorEntry
	followUps []model.FollowUpEntry
	responses []model.ResponseEntry
	assets    []model.SpeakingAsset

	saveErr error
}

func newMemStore() *memStore {
	return &memStore{nextID: 1}
}

func (m *memStore) seed(opps ...model.Opportunity) {
	for i := range opps {
		_ = m.CreateOpportunity(context.Background(), &opps[i])
	}
}

func (m *memStore) ListOpportunities(_ context.Context) ([]model.Opportunity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Opportunity, len(m.opps))
	copy(out, m.opps)
	return out, nil
}

func (m *memStore) GetOpportunity(_ context.Context, id int64) (*model.Opportunity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.opps {
		if o.ID == id {
			cp := o
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) CreateOpportunity(_ context.Context, o *model.Opportunity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o.ID = m.nextID
	m.nextID++
	m.opps = append(m.opps, *o)
	return nil
}

func (m *memStore) SaveOpportunity(_ context.Context, o model.Opportunity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	for i := range m.opps {
		if m.opps[i].ID == o.ID {
			m.opps[i] = o
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memStore) ListContacts(_ context.Context) ([]model.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Contact, len(m.contacts))
	copy(out, m.contacts)
	return out, nil
}

func (m *memStore) AppendContact(_ context.Context, c *model.Contact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = int64(len(m.contacts) + 1)
	if c.Stage == "" {
		c.Stage = model.StageNewLead
	}
	m.contacts = append(m.contacts, *c)
	return nil
}

func (m *memStore) SaveContact(_ context.Context, c model.Contact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.contacts {
		if m.contacts[i].ID == c.ID {
			m.contacts[i] = c
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memStore) AppendErrorLog(_ context.Context, e model.ErrorEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorLog = append(m.errorLog, e)
	return nil
}

func (m *memStore) AppendFollowUp(_ context.Context, e model.FollowUpEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.followUps = append(m.followUps, e)
	return nil
}

func (m *memStore) AppendResponse(_ context.Context, e model.ResponseEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, e)
	return nil
}

func (m *memStore) AppendAsset(_ context.Context, a model.SpeakingAsset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets = append(m.assets, a)
	return nil
}

func (m *memStore) Migrate(_ context.Context) error { return nil }
func (m *memStore) Close() error                    { return nil }

// mockMailer records sends and can fail specific recipients.
type mockMailer struct {
	mu     sync.Mutex
	sent   []sentMail
	failTo map[string]bool
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (m *mockMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failTo[to] {
		return errors.New("smtp rejected")
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

// mockSearcher serves canned results per query.
type mockSearcher struct {
	results map[string][]SearchResult
	err     error
}

func (m *mockSearcher) Search(_ context.Context, query string) ([]SearchResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.results[query], nil
}

// mockFetcher serves canned pages per URL.
type mockFetcher struct {
	pages map[string]string
}

func (m *mockFetcher) Fetch(_ context.Context, url string) (string, error) {
	page, ok := m.pages[url]
	if !ok {
		return "", errors.New("fetch failed")
	}
	return page, nil
}

// fixedClock pins "today" for eligibility tests.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
