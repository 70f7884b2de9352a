package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seamlessly/outreach-cli/internal/importer"
	"github.com/seamlessly/outreach-cli/internal/model"
)

var (
	importCSVPath  string
	importXLSXPath string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import opportunities from a CSV or XLSX file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		var (
			opps []model.Opportunity
			path string
			err  error
		)
		switch {
		case importCSVPath != "" && importXLSXPath != "":
			return eris.New("use either --csv or --xlsx, not both")
		case importCSVPath != "":
			path = importCSVPath
			opps, err = importer.FromCSV(path)
		case importXLSXPath != "":
			path = importXLSXPath
			opps, err = importer.FromXLSX(path)
		default:
			return eris.New("one of --csv or --xlsx is required")
		}
		if err != nil {
			return eris.Wrap(err, "parse import file")
		}

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		created, err := importer.Import(ctx, st, opps)
		if err != nil {
			return eris.Wrap(err, "import")
		}

		zap.L().Info("import complete",
			zap.Int("parsed", len(opps)),
			zap.Int("created", created),
			zap.String("file", path),
		)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importCSVPath, "csv", "", "path to CSV file")
	importCmd.Flags().StringVar(&importXLSXPath, "xlsx", "", "path to XLSX file")
	rootCmd.AddCommand(importCmd)
}
