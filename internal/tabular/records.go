// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tabular reads and writes the pipeline's tab-separated tables and
// exports enriched rows as JSON or YAML.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/paper-digest/pkg/types"
)

// ErrMissingColumn is returned when a record table lacks a required header.
var ErrMissingColumn = errors.New("missing column")

func newWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return cw
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

// WriteRecords writes the intermediate table: Heading, Paper, Paper-Link,
// Tweet-Link, Other-Links.
func WriteRecords(w io.Writer, records []types.PaperRecord) error {
	cw := newWriter(w)
	if err := cw.Write(types.RecordColumns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, rec := range records {
		row := []string{rec.Heading, rec.Title, rec.Links.Paper, rec.Links.Tweet, rec.Links.OtherJSON()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing record %q: %w", rec.Title, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadRecords parses a table written by WriteRecords. Rows that do not
// form a valid record are skipped.
func ReadRecords(r io.Reader) ([]types.PaperRecord, error) {
	cr := newReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, col := range types.RecordColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	records := []types.PaperRecord{}
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", line, err)
		}
		cell := func(col string) string {
			if i := idx[col]; i < len(row) {
				return row[i]
			}
			return ""
		}

		other, err := types.ParseOtherLinks(cell(types.ColOtherLinks))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing %s: %w", line, types.ColOtherLinks, err)
		}
		rec := types.PaperRecord{
			Heading: cell(types.ColHeading),
			Title:   cell(types.ColPaper),
			Links: types.Links{
				Paper: cell(types.ColPaperLink),
				Tweet: cell(types.ColTweetLink),
				Other: other,
			},
		}
		if rec.Valid() {
			records = append(records, rec)
		}
	}
	return records, nil
}

// SaveRecords writes the intermediate table to path.
func SaveRecords(path string, records []types.PaperRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteRecords(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadRecords reads the intermediate table from path.
func LoadRecords(path string) ([]types.PaperRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return ReadRecords(f)
}
