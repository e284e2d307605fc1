package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ramya-Perumal-code/ai-trip-agent/cmd/trip-agent-cli/ui"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/tours"
)

var (
	toursExport     bool
	toursExportFile string
)

var toursCmd = &cobra.Command{
	Use:   "tours [query]",
	Short: "Look up live booking data for an activity",
	Long: `Search the activities index for the best match, fetch its details and
print a compact booking summary. With --export the fetched tour is also
written as a dataset JSON file consumable by ingest.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTours,
}

func init() {
	toursCmd.Flags().BoolVar(&toursExport, "export", false, "write the fetched tour to the dataset directory")
	toursCmd.Flags().StringVar(&toursExportFile, "export-file", "gyg_output.json", "dataset file name for --export")
	rootCmd.AddCommand(toursCmd)
}

func runTours(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ui.Init(noColor)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	api, err := newToursAPI(cfg)
	if err != nil {
		return err
	}
	if cfg.Tours.APIKey == "" {
		ui.Warn("GYG_API_KEY not set, using mock activity data")
	}

	query := strings.Join(args, " ")

	lookup := tours.NewLookup(api, logger)
	summary := lookup.Summary(ctx, query)
	if summary == "" {
		ui.Warn("No booking data found for %q", query)
		return nil
	}

	fmt.Println(summary)

	if !toursExport {
		return nil
	}

	// Re-fetch details for export; the summary block is for display only.
	results, err := api.SearchTours(ctx, query, 1)
	if err != nil {
		return fmt.Errorf("search tours for export: %w", err)
	}
	if len(results) == 0 {
		return fmt.Errorf("no tours found for %q", query)
	}
	details, err := api.TourDetails(ctx, results[0].ID)
	if err != nil {
		return fmt.Errorf("fetch tour details for export: %w", err)
	}

	path, err := tours.SaveToDataset(details, cfg.Ingestion.DatasetDir, toursExportFile)
	if err != nil {
		return err
	}
	ui.Success("Saved tour %q to %s", details.Name, path)
	return nil
}
