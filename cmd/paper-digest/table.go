package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/pdiddy/paper-digest/pkg/types"
)

const (
	previewRows  = 3
	previewWidth = 40
)

func renderTable(headers []string, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range headers {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, len(headers))
	for i := range headers {
		configs[i] = table.ColumnConfig{
			Number:           i + 1,
			AlignHeader:      text.AlignLeft,
			WidthMax:         previewWidth,
			WidthMaxEnforcer: text.Trim,
		}
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// previewRecords renders the first n records and notes how many remain.
func previewRecords(records []types.PaperRecord, n int) string {
	var rows [][]string
	for i, rec := range records {
		if i == n {
			break
		}
		rows = append(rows, []string{rec.Heading, rec.Title, rec.Links.Paper, rec.Links.Tweet, rec.Links.OtherJSON()})
	}
	out := renderTable(types.RecordColumns, rows)
	if len(records) > n {
		out += fmt.Sprintf("\n... and %d more entries", len(records)-n)
	}
	return out
}

// previewSummary renders the enrichment counts.
func previewSummary(s types.Summary) string {
	return renderTable(
		[]string{"Records", "Eligible", "Enriched", "Failed"},
		[][]string{{fmt.Sprint(s.Records), fmt.Sprint(s.Eligible), fmt.Sprint(s.Enriched), fmt.Sprint(s.Failed)}},
	)
}
