// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"fmt"

	"github.com/pdiddy/paper-digest/pkg/types"
)

// Selector picks the records eligible for enrichment.
type Selector func(types.PaperRecord) bool

// SelectURLs returns the paper links of the records chosen by selector,
// in record order. Its output is the input of FetchAll.
func SelectURLs(records []types.PaperRecord, selector Selector) []string {
	var urls []string
	for _, rec := range records {
		if selector(rec) {
			urls = append(urls, rec.Links.Paper)
		}
	}
	return urls
}

// Assemble merges results into records. Results are matched positionally
// to the records chosen by selector; the other records pass through
// without enrichment. The column order starts with the priority columns
// and continues with every other field in first-seen order.
func Assemble(records []types.PaperRecord, selector Selector, results []types.FetchResult) (types.EnrichedTable, error) {
	table := types.EnrichedTable{Records: make([]types.EnrichedRecord, 0, len(records))}

	next := 0
	for _, rec := range records {
		er := types.EnrichedRecord{Record: rec}
		if selector(rec) {
			if next >= len(results) {
				return types.EnrichedTable{}, fmt.Errorf("assembling: %d results for more eligible records", len(results))
			}
			r := results[next]
			er.Eligible = true
			er.Result = &r
			next++
		}
		table.Records = append(table.Records, er)
	}
	if next != len(results) {
		return types.EnrichedTable{}, fmt.Errorf("assembling: %d results for %d eligible records", len(results), next)
	}

	table.Columns = Columns(table.Records)
	return table, nil
}

// Columns computes the output column order for records.
func Columns(records []types.EnrichedRecord) []string {
	seen := make(map[string]bool)
	var columns []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			columns = append(columns, name)
		}
	}

	for _, name := range types.PriorityColumns {
		add(name)
	}
	for _, name := range types.RecordColumns {
		add(name)
	}
	for _, er := range records {
		for _, f := range er.Fields() {
			add(f.Name)
		}
	}
	return columns
}
