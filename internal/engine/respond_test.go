package engine

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seamlessly/outreach-cli/internal/model"
	"github.com/seamlessly/outreach-cli/internal/store"
)

func TestClassifyStatusMapping(t *testing.T) {
	tests := []struct {
		classification string
		want           model.Status
	}{
		{"interested", model.StatusInterested},
		{"not_interested", model.StatusDeclined},
		{"needs_info", model.StatusContacted},
		{"out_of_office", model.StatusContacted},
		{"unrelated", model.StatusContacted},
		{"something_else", model.StatusContacted},
	}
	for _, tt := range tests {
		t.Run(tt.classification, func(t *testing.T) {
			today := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
			st := newMemStore()
			st.seed(model.Opportunity{EventName: "Summit", Status: model.StatusContacted})

			e := New(st, WithClock(fixedClock(today)))
			require.NoError(t, e.Classify(context.Background(), 1, tt.classification, "reply text"))

			got, _ := st.GetOpportunity(context.Background(), 1)
			assert.Equal(t, tt.want, got.Status)
			assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), got.RespondedDate)
		})
	}
}

func TestClassifyAppendsNoteAndLog(t *testing.T) {
	st := newMemStore()
	st.seed(model.Opportunity{EventName: "Summit", Status: model.StatusContacted, Notes: "seeded"})

	e := New(st)
	require.NoError(t, e.Classify(context.Background(), 1, "interested", "Yes, let's talk!"))

	got, _ := st.GetOpportunity(context.Background(), 1)
	assert.Contains(t, got.Notes, "seeded")
	assert.Contains(t, got.Notes, "Response: Yes, let's talk!")

	require.Len(t, st.responses, 1)
	assert.Equal(t, int64(1), st.responses[0].OpportunityID)
	assert.Equal(t, "interested", st.responses[0].Classification)
	assert.Equal(t, "Yes, let's talk!", st.responses[0].Snippet)
}

func TestClassifyCapsSnippet(t *testing.T) {
	st := newMemStore()
	st.seed(model.Opportunity{EventName: "Summit", Status: model.StatusContacted})

	long := strings.Repeat("x", 3000)
	e := New(st)
	require.NoError(t, e.Classify(context.Background(), 1, "needs_info", long))

	require.Len(t, st.responses, 1)
	assert.Len(t, st.responses[0].Snippet, 1000)

	got, _ := st.GetOpportunity(context.Background(), 1)
	assert.LessOrEqual(t, len(got.Notes), model.MaxNoteLen+1)
}

func TestClassifyUnknownIDIsFatal(t *testing.T) {
	e := New(newMemStore())
	err := e.Classify(context.Background(), 404, "interested", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestClassifyNormalizesLabel(t *testing.T) {
	st := newMemStore()
	st.seed(model.Opportunity{EventName: "Summit", Status: model.StatusContacted})

	e := New(st)
	require.NoError(t, e.Classify(context.Background(), 1, "  Not_Interested ", ""))

	got, _ := st.GetOpportunity(context.Background(), 1)
	assert.Equal(t, model.StatusDeclined, got.Status)
}
