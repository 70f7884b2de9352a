package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seamlessly/outreach-cli/internal/engine"
)

var leverageCmd = &cobra.Command{
	Use:   "leverage [eventName] [eventDate] [organizerName] [organizerEmail]",
	Short: "Record a delivered engagement and draft the thank-you email",
	Args:  cobra.MaximumNArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var eng engine.Engagement
		if len(args) > 0 {
			eng.EventName = args[0]
		}
		if len(args) > 1 {
			eng.EventDate = args[1]
		}
		if len(args) > 2 {
			eng.OrganizerName = args[2]
		}
		if len(args) > 3 {
			eng.OrganizerEmail = args[3]
		}

		e, st, err := newEngine(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		draft, err := e.Leverage(ctx, eng)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "To: %s\nSubject: %s\n\n%s\n", draft.To, draft.Subject, draft.Body)

		zap.L().Info("engagement recorded", zap.String("event", eng.EventName))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(leverageCmd)
}
