// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-digest/internal/digest"
	"github.com/pdiddy/paper-digest/internal/enrich"
	"github.com/pdiddy/paper-digest/internal/tabular"
	"github.com/pdiddy/paper-digest/pkg/types"
)

const (
	defaultUserAgent   = "paper-digest/0.1"
	defaultDigestPath  = "papers.md"
	defaultRecordsPath = "papers.tsv"
	defaultOutputPath  = "papers_enriched.tsv"
	defaultHTTPTimeout = 60 * time.Second
)

// envKeyReplacer maps "enrich.workers" to PAPER_DIGEST_ENRICH_WORKERS.
var envKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

func init() {
	viper.SetDefault("download.source_url", digest.DefaultSourceURL)
	viper.SetDefault("download.start_marker", digest.DefaultStartMarker)
	viper.SetDefault("download.timeout", defaultHTTPTimeout)
	viper.SetDefault("enrich.workers", enrich.DefaultWorkers)
	viper.SetDefault("enrich.timeout", enrich.DefaultTimeout)
	viper.SetDefault("enrich.format", string(types.FormatTSV))
}

// bindFlag ties a viper key to a flag so config files and environment
// variables fill in flags the user did not set.
func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", key, err))
	}
}

// bindFlags binds key/flag-name pairs of the running command. Commands
// share viper keys, so binding happens in PreRunE for the command that
// actually runs.
func bindFlags(cmd *cobra.Command, pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		key, name := pairs[i], pairs[i+1]
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			return fmt.Errorf("unknown flag %q", name)
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

func httpConfig(timeoutKey string) types.HTTPConfig {
	return types.HTTPConfig{
		Timeout:   viper.GetDuration(timeoutKey),
		UserAgent: viper.GetString("http.user_agent"),
	}
}

func downloadConfig() types.DownloadConfig {
	return types.DownloadConfig{
		HTTPConfig:  httpConfig("download.timeout"),
		SourceURL:   viper.GetString("download.source_url"),
		StartMarker: viper.GetString("download.start_marker"),
		OutputPath:  viper.GetString("download.output"),
	}
}

func extractConfig() types.ExtractConfig {
	return types.ExtractConfig{
		InputPath:  viper.GetString("extract.input"),
		OutputPath: viper.GetString("extract.output"),
	}
}

func enrichConfig() (types.EnrichConfig, error) {
	format, err := tabular.ParseFormat(viper.GetString("enrich.format"))
	if err != nil {
		return types.EnrichConfig{}, err
	}
	return types.EnrichConfig{
		HTTPConfig: httpConfig("enrich.timeout"),
		Workers:    viper.GetInt("enrich.workers"),
		InputPath:  viper.GetString("enrich.input"),
		OutputPath: viper.GetString("enrich.output"),
		Format:     format,
	}, nil
}

func logConfig() types.LogConfig {
	return types.LogConfig{
		Level:  viper.GetString("log.level"),
		Format: viper.GetString("log.format"),
	}
}

// pipelineConfig gathers every stage for the run command so a bad
// setting fails before anything is downloaded.
func pipelineConfig() (types.PipelineConfig, error) {
	en, err := enrichConfig()
	if err != nil {
		return types.PipelineConfig{}, err
	}
	return types.PipelineConfig{
		Download: downloadConfig(),
		Extract:  extractConfig(),
		Enrich:   en,
		Log:      logConfig(),
	}, nil
}

// newHTTPClient leaves timeouts to per-request contexts.
func newHTTPClient() *http.Client {
	return &http.Client{}
}
