package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seamlessly/outreach-cli/internal/model"
)

func TestScoreExampleScenario(t *testing.T) {
	// 1000+ audience (10) + Conference (5) + executive (5) + rolling CFP (2).
	o := model.Opportunity{
		AudienceSize: 1000,
		EventType:    model.EventConference,
		AudienceType: "executive",
		CFPDeadline:  "rolling",
	}
	r := Score(o)
	assert.Equal(t, 22, r.Score)
	assert.Equal(t, model.StatusHighPriority, r.Status)
}

func TestScoreBrackets(t *testing.T) {
	tests := []struct {
		name string
		o    model.Opportunity
		want int
	}{
		{"empty record", model.Opportunity{}, 0},
		{"audience 49", model.Opportunity{AudienceSize: 49}, 0},
		{"audience 50", model.Opportunity{AudienceSize: 50}, 3},
		{"audience 200", model.Opportunity{AudienceSize: 200}, 5},
		{"audience 500", model.Opportunity{AudienceSize: 500}, 8},
		{"audience 999", model.Opportunity{AudienceSize: 999}, 8},
		{"audience 1000", model.Opportunity{AudienceSize: 1000}, 10},
		{"conference", model.Opportunity{EventType: model.EventConference}, 5},
		{"association", model.Opportunity{EventType: model.EventAssociation}, 4},
		{"university", model.Opportunity{EventType: model.EventUniversity}, 3},
		{"podcast", model.Opportunity{EventType: model.EventPodcast}, 2},
		{"unknown type", model.Opportunity{EventType: "Meetup"}, 0},
		{"c-suite audience", model.Opportunity{AudienceType: "C-Suite leaders"}, 5},
		{"founders", model.Opportunity{AudienceType: "startup founders"}, 5},
		{"hotel operators", model.Opportunity{AudienceType: "hotel operators"}, 3},
		{"executive wins over hotel", model.Opportunity{AudienceType: "hotel executives"}, 5},
		{"rolling cfp", model.Opportunity{CFPDeadline: "rolling"}, 2},
		{"rolling cfp case fold", model.Opportunity{CFPDeadline: "Rolling"}, 2},
		{"dated cfp", model.Opportunity{CFPDeadline: "2026-05-01"}, 1},
		{"blank cfp", model.Opportunity{CFPDeadline: "   "}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.o).Score)
		})
	}
}

func TestStatusThresholds(t *testing.T) {
	tests := []struct {
		score int
		want  model.Status
	}{
		{22, model.StatusHighPriority},
		{18, model.StatusHighPriority},
		{17, model.StatusQualified},
		{12, model.StatusQualified},
		{11, model.StatusLowPriority},
		{8, model.StatusLowPriority},
		{7, model.StatusDisqualify},
		{0, model.StatusDisqualify},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.score), "score %d", tt.score)
	}
}

// Score must be monotone non-decreasing in audience size, holding all other
// dimensions fixed.
func TestAudienceSizeMonotonic(t *testing.T) {
	prev := -1
	for size := 0; size <= 2000; size += 7 {
		s := Score(model.Opportunity{AudienceSize: size}).Score
		assert.GreaterOrEqual(t, s, prev, "size %d", size)
		assert.GreaterOrEqual(t, s, 0)
		assert.LessOrEqual(t, s, MaxScore)
		prev = s
	}
}

func TestScoreRange(t *testing.T) {
	types := []model.EventType{"", model.EventConference, model.EventAssociation, model.EventUniversity, model.EventPodcast}
	audiences := []string{"", "executive", "hotel operators", "students"}
	deadlines := []string{"", "rolling", "2026-01-15"}
	sizes := []int{0, 49, 50, 199, 200, 499, 500, 999, 1000, 100000}

	for _, et := range types {
		for _, at := range audiences {
			for _, d := range deadlines {
				for _, sz := range sizes {
					r := Score(model.Opportunity{
						EventType: et, AudienceType: at, CFPDeadline: d, AudienceSize: sz,
					})
					assert.GreaterOrEqual(t, r.Score, 0)
					assert.LessOrEqual(t, r.Score, MaxScore)
					assert.Equal(t, StatusFor(r.Score), r.Status)
				}
			}
		}
	}
}

func TestScoreIsPure(t *testing.T) {
	o := model.Opportunity{
		AudienceSize: 700,
		EventType:    model.EventAssociation,
		AudienceType: "restaurant owners",
		CFPDeadline:  "2026-02-28",
	}
	first := Score(o)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Score(o))
	}
}
