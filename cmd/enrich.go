package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Scrape organizer contact details from event pages",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		eng, st, err := newEngine(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		report, err := eng.EnrichAll(ctx)
		if err != nil {
			return err
		}

		zap.L().Info("enrichment complete",
			zap.Int("eligible", report.Eligible),
			zap.Int("updated", report.Updated),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enrichCmd)
}
