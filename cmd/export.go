package main

import (
	"github.com/jomei/notionapi"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seamlessly/outreach-cli/internal/model"
	"github.com/seamlessly/outreach-cli/pkg/notion"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the opportunity board to a Notion database",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("export"); err != nil {
			return err
		}

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		opps, err := st.ListOpportunities(ctx)
		if err != nil {
			return err
		}

		notionClient := notion.NewClient(cfg.Notion.Token)

		created := 0
		for _, o := range opps {
			req := &notionapi.PageCreateRequest{
				Parent: notionapi.Parent{
					Type:       notionapi.ParentTypeDatabaseID,
					DatabaseID: notionapi.DatabaseID(cfg.Notion.DatabaseID),
				},
				Properties: opportunityProperties(o),
			}
			if _, err := notionClient.CreatePage(ctx, req); err != nil {
				return eris.Wrapf(err, "export opportunity %d", o.ID)
			}
			created++
		}

		zap.L().Info("export complete",
			zap.Int("created", created),
			zap.String("database", cfg.Notion.DatabaseID),
		)
		return nil
	},
}

// opportunityProperties converts one opportunity row into Notion page
// properties. The column names match the operator's tracking board.
func opportunityProperties(o model.Opportunity) notionapi.Properties {
	props := notionapi.Properties{
		"Event Name": notionapi.TitleProperty{
			Type: notionapi.PropertyTypeTitle,
			Title: []notionapi.RichText{
				{Type: notionapi.ObjectTypeText, Text: &notionapi.Text{Content: o.EventName}},
			},
		},
		"Status": notionapi.SelectProperty{
			Type:   notionapi.PropertyTypeSelect,
			Select: notionapi.Option{Name: string(o.Status)},
		},
		"Event Type": notionapi.SelectProperty{
			Type:   notionapi.PropertyTypeSelect,
			Select: notionapi.Option{Name: string(o.EventType)},
		},
	}

	if o.URL != "" {
		props["URL"] = notionapi.URLProperty{
			Type: notionapi.PropertyTypeURL,
			URL:  o.URL,
		}
	}
	if o.OrganizerEmail != "" {
		props["Organizer Email"] = notionapi.EmailProperty{
			Type:  notionapi.PropertyTypeEmail,
			Email: o.OrganizerEmail,
		}
	}
	if o.QualityScore != nil {
		props["Quality Score"] = notionapi.NumberProperty{
			Type:   notionapi.PropertyTypeNumber,
			Number: float64(*o.QualityScore),
		}
	}
	if o.Notes != "" {
		props["Notes"] = notionapi.RichTextProperty{
			Type: notionapi.PropertyTypeRichText,
			RichText: []notionapi.RichText{
				{Type: notionapi.ObjectTypeText, Text: &notionapi.Text{Content: o.Notes}},
			},
		}
	}
	return props
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
