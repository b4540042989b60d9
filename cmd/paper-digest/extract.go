package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-digest/internal/digest"
	"github.com/pdiddy/paper-digest/internal/tabular"
	"github.com/pdiddy/paper-digest/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Parse the digest's tables into a paper table",
	Long: `Extract reads the trimmed digest markdown, parses every table that has a
"Paper" column, and writes one row per paper to a tab-separated file with
the columns Heading, Paper, Paper-Link, Tweet-Link, and Other-Links.
Link labels other than Paper and Tweet are kept as a JSON object in
Other-Links.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd,
			"extract.input", "input",
			"extract.output", "output",
		)
	},
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("input", defaultDigestPath, "trimmed digest markdown")
	extractCmd.Flags().String("output", defaultRecordsPath, "paper table (TSV)")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	_, err := extractRecords(extractConfig())
	return err
}

func extractRecords(cfg types.ExtractConfig) ([]types.PaperRecord, error) {
	records, err := digest.ReadRecords(cfg.InputPath, logger)
	if err != nil {
		return nil, err
	}
	if err := tabular.SaveRecords(cfg.OutputPath, records); err != nil {
		return nil, err
	}

	fmt.Fprintf(os.Stdout, "Extracted %d papers to %s\n\n", len(records), cfg.OutputPath)
	fmt.Fprintln(os.Stdout, previewRecords(records, previewRows))
	return records, nil
}
