package importer

import (
	"encoding/csv"
	"os"

	"github.com/rotisserie/eris"

	"github.com/seamlessly/outreach-cli/internal/model"
)

// FromCSV reads opportunities from a CSV file whose first row is the header.
func FromCSV(path string) ([]model.Opportunity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "importer: open csv")
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "importer: read csv")
	}
	if len(records) == 0 {
		return nil, eris.New("importer: csv has no header row")
	}

	return parseRecords(records[0], records[1:])
}
