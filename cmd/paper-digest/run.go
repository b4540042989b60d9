package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-digest/internal/digest"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Download, extract, and enrich in one pass",
	Long: `Run chains the three stages: the digest is downloaded and trimmed to
papers.md, its tables are parsed into papers.tsv, and every arXiv paper is
enriched into the output file. The intermediate files are kept.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd,
			"download.source_url", "url",
			"download.start_marker", "start-marker",
			"download.timeout", "timeout",
		); err != nil {
			return err
		}
		return bindEnrichFlags(cmd, "")
	},
	RunE: runPipeline,
}

func init() {
	runCmd.Flags().String("url", digest.DefaultSourceURL, "raw markdown URL of the digest")
	runCmd.Flags().String("start-marker", digest.DefaultStartMarker, "line prefix where the content window begins")
	runCmd.Flags().Duration("timeout", defaultHTTPTimeout, "HTTP timeout for the digest download")
	runCmd.Flags().String("digest", defaultDigestPath, "path of the trimmed markdown")
	runCmd.Flags().String("records", defaultRecordsPath, "path of the intermediate paper table")
	addEnrichFlags(runCmd)

	rootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	digestPath, _ := cmd.Flags().GetString("digest")
	recordsPath, _ := cmd.Flags().GetString("records")

	cfg, err := pipelineConfig()
	if err != nil {
		return err
	}
	cfg.Download.OutputPath = digestPath
	cfg.Extract.InputPath = digestPath
	cfg.Extract.OutputPath = recordsPath
	cfg.Enrich.InputPath = recordsPath

	if _, err := digest.Download(cmd.Context(), newHTTPClient(), cfg.Download, os.Stdout, logger); err != nil {
		return err
	}

	records, err := extractRecords(cfg.Extract)
	if err != nil {
		return err
	}
	return enrichRecords(cmd.Context(), records, cfg.Enrich)
}
