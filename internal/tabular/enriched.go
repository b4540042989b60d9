// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tabular

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-digest/pkg/types"
)

// ExportEntry is one enriched row in JSON/YAML exports. Metadata keeps
// its typed form so absent fields stay null.
type ExportEntry struct {
	Heading    string               `json:"heading" yaml:"heading"`
	Paper      string               `json:"paper" yaml:"paper"`
	PaperLink  string               `json:"paper_link" yaml:"paper_link"`
	TweetLink  string               `json:"tweet_link,omitempty" yaml:"tweet_link,omitempty"`
	OtherLinks []types.Link         `json:"other_links,omitempty" yaml:"other_links,omitempty"`
	Metadata   *types.ArxivMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	FetchError string               `json:"fetch_error,omitempty" yaml:"fetch_error,omitempty"`
}

// WriteTable writes the enriched table as TSV with table.Columns as header.
func WriteTable(w io.Writer, table types.EnrichedTable) error {
	cw := newWriter(w)
	if err := cw.Write(table.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	row := make([]string, len(table.Columns))
	for _, rec := range table.Records {
		values := rec.Values()
		for i, col := range table.Columns {
			row[i] = values[col]
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing record %q: %w", rec.Record.Title, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Entries converts the table into export entries, in row order.
func Entries(table types.EnrichedTable) []ExportEntry {
	entries := make([]ExportEntry, 0, len(table.Records))
	for _, rec := range table.Records {
		e := ExportEntry{
			Heading:    rec.Record.Heading,
			Paper:      rec.Record.Title,
			PaperLink:  rec.Record.Links.Paper,
			TweetLink:  rec.Record.Links.Tweet,
			OtherLinks: rec.Record.Links.Other,
		}
		if rec.Result != nil {
			e.Metadata = rec.Result.Metadata
			e.FetchError = rec.Result.Error
		}
		entries = append(entries, e)
	}
	return entries
}

// Write encodes the table in the requested format.
func Write(w io.Writer, table types.EnrichedTable, format types.OutputFormat) error {
	switch format {
	case types.FormatTSV, "":
		return WriteTable(w, table)
	case types.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(Entries(table))
	case types.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(Entries(table)); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q: use tsv, json, or yaml", format)
	}
}

// ParseFormat validates an output format name; empty means tsv.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(s); f {
	case "":
		return types.FormatTSV, nil
	case types.FormatTSV, types.FormatJSON, types.FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use tsv, json, or yaml", s)
	}
}

// Save writes the table to path in the requested format.
func Save(path string, table types.EnrichedTable, format types.OutputFormat) error {
	if _, err := ParseFormat(string(format)); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, table, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
