package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jackscave/service-desk/internal/catalog"
	"github.com/jackscave/service-desk/internal/config"
	"github.com/jackscave/service-desk/internal/service"
	"github.com/jackscave/service-desk/internal/stats"
)

var (
	statsFixturePath string
	statsTopTags     int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print statistics for the seed fixture",
	Long: `Print the category breakdown, top tags and headline counters computed
over the seed fixture, without starting the server.

Examples:
  # Statistics of the embedded fixture
  servicedesk stats

  # Statistics of another fixture, top 10 tags
  servicedesk stats --fixture ./tickets.yaml --top 10`,
	RunE: runStats,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the registered categories",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printCategories(cmd.OutOrStdout(), catalog.NewRegistry())
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsFixturePath, "fixture", "", "seed fixture path (default: embedded fixture)")
	statsCmd.Flags().IntVar(&statsTopTags, "top", stats.DefaultTopTagsLimit, "number of tags to report")
}

func runStats(cmd *cobra.Command, _ []string) error {
	registry := catalog.NewRegistry()
	store, err := newStore(config.SeedConfig{Enabled: true, FixturePath: statsFixturePath}, registry, zap.NewNop())
	if err != nil {
		return err
	}
	svc := service.NewTicketService(service.TicketDependencies{
		TicketRepo:   store,
		Registry:     registry,
		TopTagsLimit: statsTopTags,
	})
	return printStatistics(cmd.OutOrStdout(), svc.Statistics(context.Background()))
}

func printStatistics(out io.Writer, s service.Statistics) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "TOTAL\tOPEN\tRESOLVED\tCRITICAL\n")
	fmt.Fprintf(w, "%d\t%d\t%d\t%d\n\n", s.Summary.Total, s.Summary.Open, s.Summary.Resolved, s.Summary.Critical)

	fmt.Fprintf(w, "CATEGORY\tTICKETS\tSHARE\n")
	for _, c := range s.Categories {
		fmt.Fprintf(w, "%s\t%d\t%.0f%%\n", c.Name, c.Count, stats.Percent(c.Count, s.Summary.Total))
	}

	fmt.Fprintf(w, "\nTAG\tCOUNT\n")
	for _, t := range s.TopTags {
		fmt.Fprintf(w, "%s\t%d\n", t.Tag, t.Count)
	}
	return w.Flush()
}

func printCategories(out io.Writer, registry *catalog.Registry) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tNAME\tPRIORITY\tSLA\n")
	for _, cat := range registry.Categories() {
		label, err := catalog.PriorityLabel(cat.Priority)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", cat.ID, cat.Name, label, cat.SLATime)
	}
	return w.Flush()
}
