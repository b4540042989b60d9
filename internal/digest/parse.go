// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package digest downloads the weekly papers digest and parses its markdown
// tables into PaperRecords.
package digest

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/pdiddy/paper-digest/internal/logging"
	"github.com/pdiddy/paper-digest/pkg/types"
)

var (
	// headingPattern matches h2 section headings ("## Top ML Papers of the Week ...").
	headingPattern = regexp.MustCompile(`(?m)^## (.+?)$`)

	// boldTitlePattern matches "3) **Title** trailing description".
	boldTitlePattern = regexp.MustCompile(`^\d+\)\s*\*\*(.*?)\*\*`)

	indexPattern = regexp.MustCompile(`^\d+\)\s*`)

	// separatorPattern splits a title from a free-text description at the
	// first whitespace-padded hyphen, en dash or em dash.
	separatorPattern = regexp.MustCompile(`\s+[-–—]\s+`)

	boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

	linkPattern = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^)]+)\)`)
)

const (
	paperHeaderCell = "| **Paper**"
	separatorRow    = "| ---"
)

// Section is one h2 section of the digest.
type Section struct {
	Heading string
	Body    string
}

// Sections splits text at h2 headings. Text before the first heading is dropped.
func Sections(text string) []Section {
	matches := headingPattern.FindAllStringSubmatchIndex(text, -1)
	sections := make([]Section, 0, len(matches))
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		sections = append(sections, Section{
			Heading: strings.TrimSpace(text[m[2]:m[3]]),
			Body:    strings.TrimSpace(text[m[1]:end]),
		})
	}
	return sections
}

// Parse extracts paper records from the digest's tables. Rows that do not
// fit the table shape are skipped; a document without qualifying rows
// yields an empty, non-nil slice.
func Parse(text string) []types.PaperRecord {
	return ParseWithLogger(text, logging.Discard())
}

// ParseWithLogger is Parse with skipped rows reported at debug level.
func ParseWithLogger(text string, logger *slog.Logger) []types.PaperRecord {
	records := []types.PaperRecord{}
	for _, sec := range Sections(text) {
		if !strings.Contains(sec.Body, paperHeaderCell) {
			continue
		}
		for _, line := range strings.Split(sec.Body, "\n") {
			line = strings.TrimSpace(line)
			if !isDataRow(line) {
				continue
			}
			rec, reason := ParseRow(sec.Heading, line)
			if reason != "" {
				logger.Debug("skipping digest row", "heading", sec.Heading, "reason", reason, "row", line)
				continue
			}
			records = append(records, rec)
		}
	}
	return records
}

func isDataRow(line string) bool {
	if !strings.HasPrefix(line, "|") {
		return false
	}
	if strings.HasPrefix(line, paperHeaderCell) || strings.HasPrefix(line, separatorRow) {
		return false
	}
	return !strings.Contains(line, "**Paper**") && !strings.Contains(line, "---")
}

// ParseRow converts one pipe-delimited table row into a record. When the
// row does not qualify, reason explains why and the record is zero.
func ParseRow(heading, line string) (rec types.PaperRecord, reason string) {
	columns := strings.Split(line, "|")
	if len(columns) < 3 {
		return types.PaperRecord{}, "fewer than 3 columns"
	}
	titleCell := strings.TrimSpace(columns[1])
	linksCell := strings.TrimSpace(columns[2])
	if titleCell == "" || linksCell == "" {
		return types.PaperRecord{}, "blank title or links cell"
	}

	rec = types.PaperRecord{
		Heading: heading,
		Title:   ExtractTitle(titleCell),
		Links:   ExtractLinks(linksCell),
	}
	switch {
	case rec.Title == "":
		return types.PaperRecord{}, "empty title"
	case rec.Links.IsEmpty():
		return types.PaperRecord{}, "no links"
	}
	return rec, ""
}

// ExtractTitle pulls the paper title out of a title cell. A bold span
// right after the index marker wins; otherwise the text before the first
// dash separator is used. A hyphenated word padded by spaces inside the
// title itself truncates it.
func ExtractTitle(cell string) string {
	if m := boldTitlePattern.FindStringSubmatch(cell); m != nil {
		return strings.TrimSpace(m[1])
	}
	title := strings.TrimSpace(indexPattern.ReplaceAllString(cell, ""))
	title = separatorPattern.Split(title, 2)[0]
	title = boldPattern.ReplaceAllString(title, "$1")
	return strings.TrimSpace(title)
}

// ExtractLinks classifies every inline markdown link in a links cell.
func ExtractLinks(cell string) types.Links {
	var links types.Links
	for _, m := range linkPattern.FindAllStringSubmatch(cell, -1) {
		links.Set(m[1], m[2])
	}
	return links
}
