package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var pitchCmd = &cobra.Command{
	Use:   "pitch",
	Short: "Generate pitch emails for triaged opportunities",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		eng, st, err := newEngine(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		report, err := eng.PitchAll(ctx)
		if err != nil {
			return err
		}

		zap.L().Info("pitching complete",
			zap.Int("eligible", report.Eligible),
			zap.Int("written", report.Written),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pitchCmd)
}
