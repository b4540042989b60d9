// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
)

// Column names of the intermediate digest table.
const (
	ColHeading    = "Heading"
	ColPaper      = "Paper"
	ColPaperLink  = "Paper-Link"
	ColTweetLink  = "Tweet-Link"
	ColOtherLinks = "Other-Links"
)

// Column names contributed by enrichment.
const (
	ColArxivID           = "arxiv_id"
	ColCategory          = "category"
	ColTitle             = "title"
	ColAuthors           = "authors"
	ColAbstract          = "abstract"
	ColComments          = "comments"
	ColSubjects          = "subjects"
	ColLinks             = "links"
	ColSubmissionHistory = "submission_history"
	ColReferences        = "references"
	ColFetchError        = "fetch_error"
)

// RecordColumns is the header of the intermediate digest table.
var RecordColumns = []string{ColHeading, ColPaper, ColPaperLink, ColTweetLink, ColOtherLinks}

// MetadataColumns lists the enrichment columns in the order they are emitted.
var MetadataColumns = []string{
	ColArxivID, ColCategory, ColTitle, ColAuthors, ColAbstract, ColComments,
	ColSubjects, ColLinks, ColSubmissionHistory, ColReferences,
}

// PriorityColumns always lead the enriched table: grouping key, title,
// category, canonical link.
var PriorityColumns = []string{ColHeading, ColPaper, ColCategory, ColPaperLink}

// Field is one named cell of an output row.
type Field struct {
	Name  string
	Value string
}

// EnrichedRecord joins a digest record with its enrichment result.
type EnrichedRecord struct {
	Record PaperRecord

	// Eligible marks records selected for enrichment. It is never written
	// as an output column.
	Eligible bool

	// Result is nil for ineligible records.
	Result *FetchResult
}

// Fields returns the row's cells in emission order. List and map values
// are rendered as JSON strings; absent values are empty strings.
func (e EnrichedRecord) Fields() []Field {
	fields := []Field{
		{ColHeading, e.Record.Heading},
		{ColPaper, e.Record.Title},
		{ColPaperLink, e.Record.Links.Paper},
		{ColTweetLink, e.Record.Links.Tweet},
		{ColOtherLinks, e.Record.Links.OtherJSON()},
	}

	var m *ArxivMetadata
	if e.Result != nil {
		m = e.Result.Metadata
	}
	if m == nil {
		for _, col := range MetadataColumns {
			fields = append(fields, Field{col, ""})
		}
	} else {
		fields = append(fields,
			Field{ColArxivID, deref(m.ArxivID)},
			Field{ColCategory, deref(m.Category)},
			Field{ColTitle, deref(m.Title)},
			Field{ColAuthors, jsonValue(m.Authors)},
			Field{ColAbstract, deref(m.Abstract)},
			Field{ColComments, deref(m.Comments)},
			Field{ColSubjects, jsonValue(m.Subjects)},
			Field{ColLinks, jsonValue(m.Links)},
			Field{ColSubmissionHistory, deref(m.SubmissionHistory)},
			Field{ColReferences, jsonValue(m.References)},
		)
	}

	if e.Result != nil && e.Result.Error != "" {
		fields = append(fields, Field{ColFetchError, e.Result.Error})
	}
	return fields
}

// Values returns the row's cells keyed by column name.
func (e EnrichedRecord) Values() map[string]string {
	fields := e.Fields()
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		values[f.Name] = f.Value
	}
	return values
}

// EnrichedTable is the final output: rows plus their column order.
type EnrichedTable struct {
	Columns []string
	Records []EnrichedRecord
}

// Summary counts the outcome of an enrichment run.
type Summary struct {
	Records  int `json:"records" yaml:"records"`
	Eligible int `json:"eligible" yaml:"eligible"`
	Enriched int `json:"enriched" yaml:"enriched"`
	Failed   int `json:"failed" yaml:"failed"`
}

// Summarize counts eligible, enriched and failed records.
func (t EnrichedTable) Summarize() Summary {
	s := Summary{Records: len(t.Records)}
	for _, r := range t.Records {
		if !r.Eligible {
			continue
		}
		s.Eligible++
		if r.Result != nil && r.Result.OK() {
			s.Enriched++
		} else {
			s.Failed++
		}
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func jsonValue(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return ""
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
