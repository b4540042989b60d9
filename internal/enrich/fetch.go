// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enrich fetches arXiv metadata for digest records in parallel and
// merges it back into the record table.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/pdiddy/paper-digest/pkg/types"
)

const (
	DefaultWorkers = 8
	DefaultTimeout = 30 * time.Second
)

// Fetcher retrieves and extracts the metadata behind one URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (types.ArxivMetadata, error)
}

// taggedResult carries the input position assigned at submission.
type taggedResult struct {
	index  int
	result types.FetchResult
}

// FetchAll fetches every URL with at most cfg.Workers requests in flight.
// Each fetch gets its own cfg.Timeout. Failures become per-item errors and
// never stop the batch. The returned slice is aligned with urls: out[i]
// is the result for urls[i], whatever order the fetches completed in.
func FetchAll(ctx context.Context, f Fetcher, urls []string, cfg types.EnrichConfig) []types.FetchResult {
	workers := cfg.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	p := pool.NewWithResults[taggedResult]().WithMaxGoroutines(workers)
	for i, url := range urls {
		i, url := i, url
		p.Go(func() taggedResult {
			return taggedResult{index: i, result: fetchOne(ctx, f, url, timeout)}
		})
	}
	tagged := p.Wait()

	sort.SliceStable(tagged, func(a, b int) bool {
		return tagged[a].index < tagged[b].index
	})

	results := make([]types.FetchResult, len(tagged))
	for i, t := range tagged {
		results[i] = t.result
	}
	return results
}

func fetchOne(ctx context.Context, f Fetcher, url string, timeout time.Duration) types.FetchResult {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	meta, err := f.Fetch(ctx, url)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("timeout after %s: %w", timeout, err)
		}
		return types.FetchResult{URL: url, Error: err.Error()}
	}
	return types.FetchResult{URL: url, Metadata: &meta}
}

// Report prints one status line per result and a closing summary, in input order.
func Report(w io.Writer, results []types.FetchResult) (ok, failed int) {
	for _, r := range results {
		if r.OK() {
			ok++
			fmt.Fprintf(w, "enriched: %s\n", r.URL)
			continue
		}
		failed++
		fmt.Fprintf(w, "failed:   %s (%s)\n", r.URL, r.Error)
	}
	fmt.Fprintf(w, "\nFetch summary: %d enriched, %d failed (total: %d)\n", ok, failed, len(results))
	return ok, failed
}
