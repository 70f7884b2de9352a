package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Prepare LinkedIn connection notes for new leads",
	Long:  "Prints a note per eligible contact; sending the requests is a manual step.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		eng, st, err := newEngine(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		report, err := eng.ConnectAll(ctx)
		if err != nil {
			return err
		}

		for _, req := range report.Prepared {
			fmt.Fprintf(os.Stdout, "%s (%s)\n  %s\n\n", req.Name, req.LinkedIn, req.Note)
		}

		zap.L().Info("connection notes prepared",
			zap.Int("eligible", report.Eligible),
			zap.Int("prepared", len(report.Prepared)),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(connectCmd)
}
