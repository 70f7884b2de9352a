package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seamlessly/outreach-cli/internal/engine"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find new speaking opportunities",
}

func runSource(src engine.Source) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		eng, st, err := newEngine(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		report, err := eng.Discover(ctx, src)
		if err != nil {
			return err
		}

		zap.L().Info("discovery complete",
			zap.String("source", src.Name),
			zap.Int("found", report.Found),
			zap.Int("added", report.Added),
		)
		return nil
	}
}

var discoverConferencesCmd = &cobra.Command{
	Use:   "conferences",
	Short: "Search for conference CFPs",
	RunE:  runSource(engine.ConferenceSource()),
}

var discoverUniversitiesCmd = &cobra.Command{
	Use:   "universities",
	Short: "Search for university guest speaker slots",
	RunE:  runSource(engine.UniversitySource()),
}

var discoverPodcastsCmd = &cobra.Command{
	Use:   "podcasts",
	Short: "Search for podcasts accepting guests",
	RunE:  runSource(engine.PodcastSource()),
}

var discoverAssociationsCmd = &cobra.Command{
	Use:   "associations",
	Short: "Scan industry association event pages",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		eng, st, err := newEngine(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		report, err := eng.ScanAssociations(ctx, engine.DefaultAssociations())
		if err != nil {
			return err
		}

		zap.L().Info("association scan complete",
			zap.Int("found", report.Found),
			zap.Int("added", report.Added),
		)
		return nil
	},
}

var discoverSourcesFile string

var discoverCustomCmd = &cobra.Command{
	Use:   "custom",
	Short: "Run discovery sources defined in a YAML file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		sources, assocs, err := engine.LoadSources(discoverSourcesFile)
		if err != nil {
			return err
		}

		eng, st, err := newEngine(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		var total engine.DiscoverReport
		for _, src := range sources {
			report, err := eng.Discover(ctx, src)
			if err != nil {
				return err
			}
			total.Found += report.Found
			total.Added += report.Added
		}
		if len(assocs) > 0 {
			report, err := eng.ScanAssociations(ctx, assocs)
			if err != nil {
				return err
			}
			total.Found += report.Found
			total.Added += report.Added
		}

		zap.L().Info("custom discovery complete",
			zap.Int("sources", len(sources)),
			zap.Int("found", total.Found),
			zap.Int("added", total.Added),
		)
		return nil
	},
}

func init() {
	discoverCustomCmd.Flags().StringVar(&discoverSourcesFile, "file", "", "path to sources YAML file (required)")
	_ = discoverCustomCmd.MarkFlagRequired("file")
	discoverCmd.AddCommand(discoverCustomCmd)
	discoverCmd.AddCommand(discoverConferencesCmd)
	discoverCmd.AddCommand(discoverUniversitiesCmd)
	discoverCmd.AddCommand(discoverPodcastsCmd)
	discoverCmd.AddCommand(discoverAssociationsCmd)
	rootCmd.AddCommand(discoverCmd)
}
