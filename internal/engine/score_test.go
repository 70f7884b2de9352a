package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seamlessly/outreach-cli/internal/model"
)

func TestScoreAll(t *testing.T) {
	st := newMemStore()
	st.seed(
		model.Opportunity{
			EventName:    "Hospitality Innovation Summit",
			EventType:    model.EventConference,
			AudienceSize: 1000,
			AudienceType: "executive leadership",
			CFPDeadline:  "rolling",
			Status:       model.StatusNew,
		},
		model.Opportunity{
			EventName: "Tiny Meetup",
			Status:    model.StatusNew,
		},
	)

	e := New(st)
	report, err := e.ScoreAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Evaluated)
	assert.Equal(t, 2, report.Scored)

	got, err := st.GetOpportunity(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, got.QualityScore)
	assert.Equal(t, 22, *got.QualityScore)
	assert.Equal(t, model.StatusHighPriority, got.Status)

	got, err = st.GetOpportunity(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, got.QualityScore)
	assert.Equal(t, 0, *got.QualityScore)
	assert.Equal(t, model.StatusDisqualify, got.Status)
}

func TestScoreAllIsIdempotent(t *testing.T) {
	st := newMemStore()
	st.seed(model.Opportunity{
		EventName:    "Summit",
		EventType:    model.EventConference,
		AudienceSize: 600,
		Status:       model.StatusNew,
	})

	e := New(st)
	first, err := e.ScoreAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Scored)

	// Second run must not touch already-scored records.
	second, err := e.ScoreAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, second.Evaluated)
	assert.Zero(t, second.Scored)
}

func TestScoreAllKeepsAdvancedStatus(t *testing.T) {
	// An unscored record that already moved past triage keeps its status;
	// only the score is backfilled.
	st := newMemStore()
	st.seed(model.Opportunity{
		EventName: "Already Contacted",
		EventType: model.EventPodcast,
		Status:    model.StatusContacted,
	})

	e := New(st)
	_, err := e.ScoreAll(context.Background())
	require.NoError(t, err)

	got, err := st.GetOpportunity(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, got.QualityScore)
	assert.Equal(t, model.StatusContacted, got.Status)
}

func TestScoreAllIsolatesSaveFailures(t *testing.T) {
	st := newMemStore()
	st.seed(
		model.Opportunity{EventName: "a", Status: model.StatusNew},
		model.Opportunity{EventName: "b", Status: model.StatusNew},
	)
	st.saveErr = assert.AnError

	e := New(st)
	report, err := e.ScoreAll(context.Background())
	require.NoError(t, err, "per-record failures never abort the batch")
	assert.Zero(t, report.Scored)
	assert.Len(t, st.errorLog, 2)
	for _, entry := range st.errorLog {
		assert.Equal(t, "score", entry.Workflow)
	}
}
