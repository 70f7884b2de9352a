package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send pitch emails to Ready to Send opportunities",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		eng, st, err := newEngine(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		report, err := eng.SendAll(ctx)
		if err != nil {
			return err
		}

		zap.L().Info("outreach complete",
			zap.Int("eligible", report.Eligible),
			zap.Int("sent", report.Sent),
			zap.Int("failed", report.Failed),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
}
