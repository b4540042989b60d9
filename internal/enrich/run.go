// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/pdiddy/paper-digest/pkg/types"
)

// Records enriches the records chosen by selector and assembles the final
// table. Per-item fetch failures are reported to w and kept in the table;
// only an assembly inconsistency is returned as an error.
func Records(ctx context.Context, f Fetcher, records []types.PaperRecord, selector Selector, cfg types.EnrichConfig, w io.Writer, logger *slog.Logger) (types.EnrichedTable, error) {
	urls := SelectURLs(records, selector)
	logger.Info("fetching abstract pages", "records", len(records), "eligible", len(urls), "workers", cfg.Workers)

	start := time.Now()
	results := FetchAll(ctx, f, urls, cfg)
	for _, r := range results {
		if !r.OK() {
			logger.Warn("fetch failed", "url", r.URL, "error", r.Error)
		}
	}
	ok, failed := Report(w, results)
	logger.Info("fetch finished", "enriched", ok, "failed", failed, "elapsed", time.Since(start))

	return Assemble(records, selector, results)
}
