// Package importer ingests opportunity rows from CSV and XLSX exports.
// Spreadsheet quirks stop here: header aliases are resolved against a fixed
// table and rows come out as typed records, so the rest of the engine never
// sees a raw column name.
package importer

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/seamlessly/outreach-cli/internal/store"
)

// fieldAliases maps each canonical field to the header spellings seen in
// the wild. Matching is case-insensitive on the trimmed header text.
var fieldAliases = map[string][]string{
	"event_name":              {"event_name", "conference_name", "event name", "event", "name"},
	"event_type":              {"event_type", "type"},
	"event_date":              {"event_date", "date", "event date"},
	"location":                {"location", "city"},
	"url":                     {"url", "event url", "link", "website", "event link"},
	"description":             {"description"},
	"organizer_name":          {"organizer_name", "organizer", "organizer name", "contact_name"},
	"organizer_email":         {"organizer_email", "email", "organizer email", "contact_email"},
	"organizer_linkedin":      {"organizer_linkedin", "linkedin"},
	"organizer_title":         {"organizer_title", "title"},
	"audience_size":           {"audience_size", "audience size", "attendees"},
	"audience_type":           {"audience_type", "audience type", "audience"},
	"status":                  {"status"},
	"quality_score":           {"quality_score", "score"},
	"source":                  {"source"},
	"discovered_date":         {"discovered_date", "discovered"},
	"contacted_date":          {"contacted_date", "contacted"},
	"cfp_deadline":            {"cfp_deadline", "cfp deadline", "cfp"},
	"submission_requirements": {"submission_requirements", "submission requirements"},
	"pitch_subject":           {"pitch_subject"},
	"pitch_body":              {"pitch_body"},
	"recommended_topic":       {"recommended_topic"},
	"follow_up_count":         {"follow_up_count", "follow ups"},
	"last_follow_up_date":     {"last_follow_up_date"},
	"responded_date":          {"responded_date", "responded"},
	"notes":                   {"notes"},
}

// mandatoryFields must resolve or the import is refused outright. Every
// other field fails closed: no matching header simply means absent.
var mandatoryFields = []string{"event_name"}

// columnMap resolves canonical field names to column indexes for one file.
type columnMap map[string]int

// resolveHeader maps a header row to canonical fields. Returns an error
// wrapping store.ErrConflict when a mandatory column cannot be found under
// any accepted alias.
func resolveHeader(headers []string) (columnMap, error) {
	byName := make(map[string]int, len(headers))
	for i, h := range headers {
		byName[strings.ToLower(strings.TrimSpace(h))] = i
	}

	cols := make(columnMap)
	for field, aliases := range fieldAliases {
		for _, alias := range aliases {
			if idx, ok := byName[alias]; ok {
				cols[field] = idx
				break
			}
		}
	}

	for _, field := range mandatoryFields {
		if _, ok := cols[field]; !ok {
			return nil, eris.Wrapf(store.ErrConflict, "importer: mandatory column %q not found under any alias", field)
		}
	}
	return cols, nil
}

// get returns the trimmed cell for a canonical field, or "" when the
// column is absent or the row is short.
func (m columnMap) get(row []string, field string) string {
	idx, ok := m[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
