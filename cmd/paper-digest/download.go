package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-digest/internal/digest"
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download the digest and trim it to its paper tables",
	Long: `Download fetches the raw digest README and keeps the lines from the first
"## Top ML Papers" heading up to the last horizontal rule. The trimmed
markdown is written to papers.md.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd,
			"download.source_url", "url",
			"download.start_marker", "start-marker",
			"download.timeout", "timeout",
			"download.output", "output",
		)
	},
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().String("url", digest.DefaultSourceURL, "raw markdown URL of the digest")
	downloadCmd.Flags().String("start-marker", digest.DefaultStartMarker, "line prefix where the content window begins")
	downloadCmd.Flags().Duration("timeout", defaultHTTPTimeout, "HTTP request timeout")
	downloadCmd.Flags().String("output", defaultDigestPath, "path of the trimmed markdown")

	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	_, err := digest.Download(cmd.Context(), newHTTPClient(), downloadConfig(), os.Stdout, logger)
	return err
}
