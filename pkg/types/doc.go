// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paper-digest pipeline:
// digest records, scraped arXiv metadata, fetch results, the enriched
// output table, and stage configuration.
package types
