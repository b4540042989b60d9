package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the per-request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-digest/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// DownloadConfig holds settings for fetching and trimming the digest.
type DownloadConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// SourceURL is the raw markdown URL of the digest.
	SourceURL string `json:"source_url" yaml:"source_url" mapstructure:"source_url"`

	// StartMarker is the line prefix where the content window begins
	// (e.g. "## Top ML Papers ").
	StartMarker string `json:"start_marker" yaml:"start_marker" mapstructure:"start_marker"`

	// OutputPath is where the trimmed markdown is written.
	OutputPath string `json:"output_path" yaml:"output_path" mapstructure:"output_path"`
}

// ExtractConfig holds settings for turning the digest into a record table.
type ExtractConfig struct {
	// InputPath is the trimmed markdown digest.
	InputPath string `json:"input_path" yaml:"input_path" mapstructure:"input_path"`

	// OutputPath is the intermediate TSV.
	OutputPath string `json:"output_path" yaml:"output_path" mapstructure:"output_path"`
}

// OutputFormat selects the enriched output encoding.
type OutputFormat string

const (
	FormatTSV  OutputFormat = "tsv"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// EnrichConfig holds settings for the enrichment stage.
type EnrichConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Workers bounds the number of concurrent page fetches (default 8).
	Workers int `json:"workers" yaml:"workers" mapstructure:"workers"`

	// InputPath is the intermediate TSV.
	InputPath string `json:"input_path" yaml:"input_path" mapstructure:"input_path"`

	// OutputPath is the enriched output file.
	OutputPath string `json:"output_path" yaml:"output_path" mapstructure:"output_path"`

	// Format selects the output encoding: tsv, json, or yaml.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is console or json. Empty picks console on a terminal, json otherwise.
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Download DownloadConfig `json:"download" yaml:"download" mapstructure:"download"`
	Extract  ExtractConfig  `json:"extract" yaml:"extract" mapstructure:"extract"`
	Enrich   EnrichConfig   `json:"enrich" yaml:"enrich" mapstructure:"enrich"`
	Log      LogConfig      `json:"log" yaml:"log" mapstructure:"log"`
}
