package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seamlessly/outreach-cli/internal/model"
)

func writeSourcesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSources(t *testing.T) {
	path := writeSourcesFile(t, `
sources:
  - name: trade-show-hunter
    event_type: Conference
    queries:
      - "hotel trade show 2026 speakers"
      - "hospitality expo CFP"
    pattern: "(?i)expo|trade show"
  - name: webinar-finder
    location: Remote
    queries:
      - "hospitality webinar panelists wanted"
associations:
  - name: "HSMAI"
    url: "https://hsmai.org"
`)

	sources, assocs, err := LoadSources(path)
	require.NoError(t, err)
	require.Len(t, sources, 2)
	require.Len(t, assocs, 1)

	assert.Equal(t, "trade-show-hunter", sources[0].Name)
	assert.Equal(t, model.EventConference, sources[0].EventType)
	assert.Len(t, sources[0].Queries, 2)
	require.NotNil(t, sources[0].Accept)
	assert.True(t, sources[0].Accept(SearchResult{Title: "Hotel Expo 2026"}))
	assert.False(t, sources[0].Accept(SearchResult{Title: "Unrelated article"}))

	// Missing event_type falls back to Conference; missing pattern accepts all.
	assert.Equal(t, model.EventConference, sources[1].EventType)
	assert.Equal(t, "Remote", sources[1].Location)
	assert.Nil(t, sources[1].Accept)

	assert.Equal(t, "HSMAI", assocs[0].Name)
	assert.Equal(t, "https://hsmai.org", assocs[0].URL)
}

func TestLoadSourcesRejectsNameless(t *testing.T) {
	path := writeSourcesFile(t, `
sources:
  - queries: ["something"]
`)
	_, _, err := LoadSources(path)
	require.Error(t, err)
}

func TestLoadSourcesRejectsBadPattern(t *testing.T) {
	path := writeSourcesFile(t, `
sources:
  - name: broken
    queries: ["q"]
    pattern: "("
`)
	_, _, err := LoadSources(path)
	require.Error(t, err)
}

func TestLoadSourcesRejectsIncompleteAssociation(t *testing.T) {
	path := writeSourcesFile(t, `
associations:
  - name: "No URL"
`)
	_, _, err := LoadSources(path)
	require.Error(t, err)
}

func TestLoadSourcesMissingFile(t *testing.T) {
	_, _, err := LoadSources(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
