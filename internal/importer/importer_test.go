package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/seamlessly/outreach-cli/internal/model"
	"github.com/seamlessly/outreach-cli/internal/store"
)

func TestResolveHeaderAliases(t *testing.T) {
	cols, err := resolveHeader([]string{"Conference_Name", "Event URL", "Status", "email"})
	require.NoError(t, err)

	row := []string{"Summit", "https://summit.example.com", "New", "org@example.com"}
	assert.Equal(t, "Summit", cols.get(row, "event_name"))
	assert.Equal(t, "https://summit.example.com", cols.get(row, "url"))
	assert.Equal(t, "New", cols.get(row, "status"))
	assert.Equal(t, "org@example.com", cols.get(row, "organizer_email"))
}

func TestResolveHeaderMandatoryMissing(t *testing.T) {
	_, err := resolveHeader([]string{"url", "status", "notes"})
	require.Error(t, err)
	assert.True(t, eris.Is(err, store.ErrConflict))
}

func TestColumnMapFailsClosed(t *testing.T) {
	cols, err := resolveHeader([]string{"event_name"})
	require.NoError(t, err)

	// Unknown fields and short rows read as absent, never panic.
	assert.Empty(t, cols.get([]string{"Summit"}, "url"))
	assert.Empty(t, cols.get([]string{}, "event_name"))
}

func TestParseRecordsTypedFields(t *testing.T) {
	headers := []string{"event_name", "event_type", "audience_size", "quality_score", "status", "contacted_date", "follow_up_count"}
	rows := [][]string{
		{"Summit", "Conference", "600", "14", "Qualified", "2026-08-01", "2"},
		{"", "Conference", "1", "1", "New", "", "0"},
		{"Bare Minimum"},
	}

	opps, err := parseRecords(headers, rows)
	require.NoError(t, err)
	require.Len(t, opps, 2, "row without event name skipped")

	assert.Equal(t, model.EventConference, opps[0].EventType)
	assert.Equal(t, 600, opps[0].AudienceSize)
	require.NotNil(t, opps[0].QualityScore)
	assert.Equal(t, 14, *opps[0].QualityScore)
	assert.Equal(t, model.StatusQualified, opps[0].Status)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), opps[0].ContactedDate)
	assert.Equal(t, 2, opps[0].FollowUpCount)

	assert.Equal(t, "Bare Minimum", opps[1].EventName)
	assert.Equal(t, model.StatusNew, opps[1].Status, "missing status defaults to New")
	assert.Nil(t, opps[1].QualityScore)
}

func TestParseRecordsIgnoresMalformedNumbers(t *testing.T) {
	headers := []string{"event_name", "audience_size", "quality_score"}
	opps, err := parseRecords(headers, [][]string{{"Summit", "lots", "high"}})
	require.NoError(t, err)
	require.Len(t, opps, 1)
	assert.Zero(t, opps[0].AudienceSize)
	assert.Nil(t, opps[0].QualityScore)
}

func TestFromCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opps.csv")
	data := "Conference_Name,URL,Status,Notes\nSummit,https://summit.example.com,New,seeded\nGala,https://gala.example.com,,\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	opps, err := FromCSV(path)
	require.NoError(t, err)
	require.Len(t, opps, 2)
	assert.Equal(t, "Summit", opps[0].EventName)
	assert.Equal(t, "seeded", opps[0].Notes)
	assert.Equal(t, model.StatusNew, opps[1].Status)
}

func TestFromCSVMissingMandatoryColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("URL,Status\nhttps://x.example.com,New\n"), 0o644))

	_, err := FromCSV(path)
	require.Error(t, err)
	assert.True(t, eris.Is(err, store.ErrConflict))
}

func createTestXLSX(t *testing.T, rows [][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Opportunities")
	require.NoError(t, err)
	for _, rowData := range rows {
		row := sheet.AddRow()
		for _, cellData := range rowData {
			row.AddCell().SetString(cellData)
		}
	}
	path := filepath.Join(t.TempDir(), "opps.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestFromXLSX(t *testing.T) {
	path := createTestXLSX(t, [][]string{
		{"event_name", "event_type", "url"},
		{"Podcast Pitch", "Podcast", "https://pod.example.com"},
	})

	opps, err := FromXLSX(path)
	require.NoError(t, err)
	require.Len(t, opps, 1)
	assert.Equal(t, "Podcast Pitch", opps[0].EventName)
	assert.Equal(t, model.EventPodcast, opps[0].EventType)
}

func TestImportCreatesRows(t *testing.T) {
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "import.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Migrate(context.Background()))

	opps := []model.Opportunity{
		{EventName: "Summit", Status: model.StatusNew},
		{EventName: "Gala", Status: model.StatusNew},
	}
	created, err := Import(context.Background(), s, opps)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	stored, err := s.ListOpportunities(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}
