package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-digest/internal/arxiv"
	"github.com/pdiddy/paper-digest/internal/digest"
	"github.com/pdiddy/paper-digest/internal/enrich"
	"github.com/pdiddy/paper-digest/internal/tabular"
	"github.com/pdiddy/paper-digest/pkg/types"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Scrape arXiv abstract pages for every arXiv paper in the table",
	Long: `Enrich reads the paper table, fetches the abstract page of every row whose
Paper-Link is an arxiv.org/abs/ URL, and writes the table with the scraped
metadata (arxiv_id, category, title, authors, abstract, comments, subjects,
links, submission_history, references) appended. Pages are fetched in
parallel by a bounded worker pool; a page that fails is marked in the
fetch_error column and does not stop the run.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindEnrichFlags(cmd, "input")
	},
	RunE: runEnrich,
}

func init() {
	enrichCmd.Flags().String("input", defaultRecordsPath, "paper table (TSV)")
	addEnrichFlags(enrichCmd)

	rootCmd.AddCommand(enrichCmd)
}

// addEnrichFlags registers the flags shared by enrich and run.
func addEnrichFlags(cmd *cobra.Command) {
	cmd.Flags().Int("workers", enrich.DefaultWorkers, "maximum concurrent page fetches")
	cmd.Flags().Duration("fetch-timeout", enrich.DefaultTimeout, "timeout for each page fetch")
	cmd.Flags().String("output", defaultOutputPath, "enriched output file")
	cmd.Flags().String("format", string(types.FormatTSV), "output format: tsv, json, or yaml")
}

func bindEnrichFlags(cmd *cobra.Command, inputFlag string) error {
	pairs := []string{
		"enrich.workers", "workers",
		"enrich.timeout", "fetch-timeout",
		"enrich.output", "output",
		"enrich.format", "format",
	}
	if inputFlag != "" {
		pairs = append(pairs, "enrich.input", inputFlag)
	}
	return bindFlags(cmd, pairs...)
}

func runEnrich(cmd *cobra.Command, args []string) error {
	cfg, err := enrichConfig()
	if err != nil {
		return err
	}

	records, err := tabular.LoadRecords(cfg.InputPath)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("%s: %w", cfg.InputPath, digest.ErrNoPapers)
	}
	return enrichRecords(cmd.Context(), records, cfg)
}

func enrichRecords(ctx context.Context, records []types.PaperRecord, cfg types.EnrichConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	fetcher := &arxiv.PageFetcher{Client: newHTTPClient(), UserAgent: cfg.UserAgent}

	table, err := enrich.Records(ctx, fetcher, records, arxiv.IsAbstractRecord, cfg, os.Stdout, logger)
	if err != nil {
		return err
	}
	if err := tabular.Save(cfg.OutputPath, table, cfg.Format); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "\nWrote %d rows to %s\n", len(table.Records), cfg.OutputPath)
	fmt.Fprintln(os.Stdout, previewSummary(table.Summarize()))
	return nil
}
