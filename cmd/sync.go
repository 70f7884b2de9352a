package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seamlessly/outreach-cli/pkg/salesforce"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push discovered contacts to Salesforce as Leads",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("sync"); err != nil {
			return err
		}

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		contacts, err := st.ListContacts(ctx)
		if err != nil {
			return err
		}

		var leads []map[string]any
		for _, c := range contacts {
			if c.Name == "" && c.Email == "" {
				continue
			}
			name := c.Name
			if name == "" {
				name = c.Email
			}
			leads = append(leads, map[string]any{
				"LastName":    name,
				"Company":     c.Organization,
				"Email":       c.Email,
				"Title":       c.Title,
				"LeadSource":  "Speaker Outreach",
				"Description": c.EventRelated,
			})
		}
		if len(leads) == 0 {
			zap.L().Info("no contacts to sync")
			return nil
		}

		sf, err := salesforce.Connect(
			cfg.Salesforce.Domain,
			cfg.Salesforce.Username,
			cfg.Salesforce.ConsumerKey,
			cfg.Salesforce.KeyPath,
		)
		if err != nil {
			return err
		}

		results, err := sf.InsertCollection(ctx, "Lead", leads)
		if err != nil {
			return err
		}

		inserted, failed := 0, 0
		for _, r := range results {
			if r.Success {
				inserted++
				continue
			}
			failed++
			zap.L().Warn("lead insert failed", zap.Strings("errors", r.Errors))
		}

		zap.L().Info("salesforce sync complete",
			zap.Int("inserted", inserted),
			zap.Int("failed", failed),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
