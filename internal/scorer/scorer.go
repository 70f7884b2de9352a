// Package scorer assigns a deterministic 0-25 quality score to an
// opportunity and maps the score to an initial triage status. Scoring is
// side-effect-free and runs exactly once per record: a record with any
// assigned score, including zero, is never rescored.
package scorer

import (
	"regexp"
	"strings"

	"github.com/seamlessly/outreach-cli/internal/model"
)

// MaxScore is the upper bound of the scoring scale. The component weights
// (10 audience + 5 type + 5 fit + 2 CFP) top out at 22.
const MaxScore = 25

// Status thresholds. Score >= ThresholdHigh is High Priority, and so on down
// to Disqualify below ThresholdLow.
const (
	ThresholdHigh      = 18
	ThresholdQualified = 12
	ThresholdLow       = 8
)

var (
	executiveRe = regexp.MustCompile(`(?i)executive|c-suite|ceo|founder`)
	industryRe  = regexp.MustCompile(`(?i)venue|restaurant|hotel|tech`)
)

// Result is the outcome of scoring one opportunity.
type Result struct {
	Score  int
	Status model.Status
}

// Score computes the quality score and triage status for an opportunity.
func Score(o model.Opportunity) Result {
	score := audienceSizePoints(o.AudienceSize) +
		eventTypePoints(o.EventType) +
		audienceTypePoints(o.AudienceType) +
		cfpPoints(o.CFPDeadline)

	return Result{Score: score, Status: StatusFor(score)}
}

// StatusFor maps a score to its triage status via the fixed thresholds.
func StatusFor(score int) model.Status {
	switch {
	case score >= ThresholdHigh:
		return model.StatusHighPriority
	case score >= ThresholdQualified:
		return model.StatusQualified
	case score >= ThresholdLow:
		return model.StatusLowPriority
	default:
		return model.StatusDisqualify
	}
}

func audienceSizePoints(size int) int {
	switch {
	case size >= 1000:
		return 10
	case size >= 500:
		return 8
	case size >= 200:
		return 5
	case size >= 50:
		return 3
	default:
		return 0
	}
}

func eventTypePoints(t model.EventType) int {
	switch t {
	case model.EventConference:
		return 5
	case model.EventAssociation:
		return 4
	case model.EventUniversity:
		return 3
	case model.EventPodcast:
		return 2
	default:
		return 0
	}
}

// audienceTypePoints matches executive keywords first; the two buckets are
// mutually exclusive.
func audienceTypePoints(audienceType string) int {
	switch {
	case executiveRe.MatchString(audienceType):
		return 5
	case industryRe.MatchString(audienceType):
		return 3
	default:
		return 0
	}
}

func cfpPoints(deadline string) int {
	d := strings.TrimSpace(deadline)
	switch {
	case strings.EqualFold(d, "rolling"):
		return 2
	case d != "":
		return 1
	default:
		return 0
	}
}
