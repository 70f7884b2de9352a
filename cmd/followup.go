package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var followupCmd = &cobra.Command{
	Use:   "followup",
	Short: "Send follow-ups to contacted opportunities that have not replied",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		eng, st, err := newEngine(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		report, err := eng.FollowUpAll(ctx)
		if err != nil {
			return err
		}

		zap.L().Info("follow-up complete",
			zap.Int("eligible", report.Eligible),
			zap.Int("sent", report.Sent),
			zap.Int("exhausted", report.Exhausted),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(followupCmd)
}
