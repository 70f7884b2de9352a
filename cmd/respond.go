package main

import (
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var respondCmd = &cobra.Command{
	Use:   "respond <id> <classification> [snippet]",
	Short: "Record a classified organizer reply",
	Long:  "Classifications: interested, not_interested, needs_info, out_of_office, unrelated. Unknown labels keep the record in Contacted.",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return eris.Wrapf(err, "invalid opportunity id %q", args[0])
		}
		classification := args[1]
		var snippet string
		if len(args) == 3 {
			snippet = args[2]
		}

		eng, st, err := newEngine(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := eng.Classify(ctx, id, classification, snippet); err != nil {
			return err
		}

		zap.L().Info("response recorded",
			zap.Int64("id", id),
			zap.String("classification", classification),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(respondCmd)
}
