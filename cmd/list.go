package main

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/seamlessly/outreach-cli/internal/model"
)

var (
	listStatus string
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked opportunities",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		opps, err := st.ListOpportunities(ctx)
		if err != nil {
			return err
		}

		if listStatus != "" {
			filtered := opps[:0]
			for _, o := range opps {
				if o.Status == model.Status(listStatus) {
					filtered = append(filtered, o)
				}
			}
			opps = filtered
		}

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(opps)
		}

		tw := table.NewWriter()
		tw.SetOutputMirror(os.Stdout)
		tw.AppendHeader(table.Row{"ID", "Event", "Type", "Status", "Score", "Organizer Email", "Follow-Ups"})
		for _, o := range opps {
			score := ""
			if o.QualityScore != nil {
				score = strconv.Itoa(*o.QualityScore)
			}
			tw.AppendRow(table.Row{o.ID, o.EventName, o.EventType, o.Status, score, o.OrganizerEmail, o.FollowUpCount})
		}
		tw.Render()
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by status")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print JSON instead of a table")
	rootCmd.AddCommand(listCmd)
}
