// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tabular

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-digest/pkg/types"
)

func testTable() types.EnrichedTable {
	recs := testRecords()
	title := "Sparse Mixture Routing for Efficient Experts"
	category := "Computer Science > Computation and Language"
	meta := &types.ArxivMetadata{
		Title:      &title,
		Category:   &category,
		Authors:    []string{"Jane Lee", "Soo Kim"},
		Subjects:   []string{"Computation and Language (cs.CL)"},
		References: []types.Reference{},
	}
	records := []types.EnrichedRecord{
		{Record: recs[0], Eligible: true, Result: &types.FetchResult{URL: recs[0].Links.Paper, Metadata: meta}},
		{Record: recs[1]},
	}
	return types.EnrichedTable{
		Columns: []string{"Heading", "Paper", "category", "Paper-Link", "Tweet-Link", "Other-Links", "title", "authors"},
		Records: records,
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, testTable()))

	r := csv.NewReader(&buf)
	r.Comma = '\t'
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, testTable().Columns, rows[0])
	assert.Equal(t, "Computer Science > Computation and Language", rows[1][2])
	assert.Equal(t, `["Jane Lee","Soo Kim"]`, rows[1][7])
	assert.Equal(t, `The "Quoted" Model`, rows[2][1])
	assert.Equal(t, "", rows[2][2])
	assert.Equal(t, `{"Code": "https://github.com/x/y", "Blog": "https://b.example.com"}`, rows[2][5])
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testTable(), types.FormatJSON))

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, 2)

	meta := entries[0]["metadata"].(map[string]any)
	assert.Equal(t, "Sparse Mixture Routing for Efficient Experts", meta["title"])
	assert.Nil(t, meta["abstract"])
	assert.Contains(t, meta, "abstract")
	assert.NotContains(t, entries[1], "metadata")
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testTable(), types.FormatYAML))

	var entries []ExportEntry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Sparse Mixture Routing", entries[0].Paper)
	require.NotNil(t, entries[0].Metadata)
	assert.Equal(t, []string{"Jane Lee", "Soo Kim"}, entries[0].Metadata.Authors)
	assert.Nil(t, entries[1].Metadata)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, types.FormatTSV, f)

	f, err = ParseFormat("yaml")
	require.NoError(t, err)
	assert.Equal(t, types.FormatYAML, f)

	_, err = ParseFormat("xlsx")
	assert.Error(t, err)
}

func TestSave_RejectsUnknownFormat(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "out.xlsx"), testTable(), "xlsx")
	assert.Error(t, err)
}
