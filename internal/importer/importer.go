package importer

import (
	"context"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/seamlessly/outreach-cli/internal/model"
	"github.com/seamlessly/outreach-cli/internal/store"
)

const dateLayout = "2006-01-02"

// parseRecords converts raw rows to typed opportunities using a resolved
// header. Rows without an event name are skipped, not fatal.
func parseRecords(headers []string, rows [][]string) ([]model.Opportunity, error) {
	cols, err := resolveHeader(headers)
	if err != nil {
		return nil, err
	}

	var out []model.Opportunity
	for _, row := range rows {
		name := cols.get(row, "event_name")
		if name == "" {
			continue
		}

		o := model.Opportunity{
			EventName:              name,
			EventType:              model.EventType(cols.get(row, "event_type")),
			EventDate:              cols.get(row, "event_date"),
			Location:               cols.get(row, "location"),
			URL:                    cols.get(row, "url"),
			Description:            cols.get(row, "description"),
			OrganizerName:          cols.get(row, "organizer_name"),
			OrganizerEmail:         cols.get(row, "organizer_email"),
			OrganizerLinkedIn:      cols.get(row, "organizer_linkedin"),
			OrganizerTitle:         cols.get(row, "organizer_title"),
			AudienceType:           cols.get(row, "audience_type"),
			Source:                 cols.get(row, "source"),
			CFPDeadline:            cols.get(row, "cfp_deadline"),
			SubmissionRequirements: cols.get(row, "submission_requirements"),
			PitchSubject:           cols.get(row, "pitch_subject"),
			PitchBody:              cols.get(row, "pitch_body"),
			RecommendedTopic:       cols.get(row, "recommended_topic"),
			Notes:                  cols.get(row, "notes"),
		}

		o.Status = model.Status(cols.get(row, "status"))
		if o.Status == "" {
			o.Status = model.StatusNew
		}

		if v := cols.get(row, "audience_size"); v != "" {
			if n, convErr := strconv.Atoi(v); convErr == nil && n >= 0 {
				o.AudienceSize = n
			}
		}
		if v := cols.get(row, "quality_score"); v != "" {
			if n, convErr := strconv.Atoi(v); convErr == nil {
				o.QualityScore = &n
			}
		}
		if v := cols.get(row, "follow_up_count"); v != "" {
			if n, convErr := strconv.Atoi(v); convErr == nil && n >= 0 {
				o.FollowUpCount = n
			}
		}

		o.DiscoveredDate = parseDate(cols.get(row, "discovered_date"))
		o.ContactedDate = parseDate(cols.get(row, "contacted_date"))
		o.LastFollowUpDate = parseDate(cols.get(row, "last_follow_up_date"))
		o.RespondedDate = parseDate(cols.get(row, "responded_date"))

		out = append(out, o)
	}
	return out, nil
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Import creates a row per parsed opportunity. Individual create failures
// are logged and skipped; the count of created rows is returned.
func Import(ctx context.Context, st store.Store, opps []model.Opportunity) (int, error) {
	created := 0
	for i := range opps {
		if err := st.CreateOpportunity(ctx, &opps[i]); err != nil {
			zap.L().Warn("import: create failed",
				zap.String("event", opps[i].EventName),
				zap.Error(err),
			)
			continue
		}
		created++
	}
	if created == 0 && len(opps) > 0 {
		return 0, eris.New("importer: no rows imported")
	}
	return created, nil
}
