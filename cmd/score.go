package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score unscored opportunities into triage buckets",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		eng, st, err := newEngine(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		report, err := eng.ScoreAll(ctx)
		if err != nil {
			return err
		}

		zap.L().Info("scoring complete",
			zap.Int("evaluated", report.Evaluated),
			zap.Int("scored", report.Scored),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}
