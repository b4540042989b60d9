// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/pdiddy/paper-digest/internal/httputil"
	"github.com/pdiddy/paper-digest/pkg/types"
)

// ErrPatternNotFound is returned when a fetched page lacks the content region.
var ErrPatternNotFound = errors.New("pattern not found")

// contentRegionPattern spans the abstract's left column up to the float
// clearing div that closes the main content.
var contentRegionPattern = regexp.MustCompile(`(?s)<div class="leftcolumn">.*?<div style="clear:both;"></div>`)

// abstractPathMarker identifies arXiv abstract page URLs.
const abstractPathMarker = "arxiv.org/abs/"

// IsAbstractURL reports whether url points at an arXiv abstract page.
func IsAbstractURL(url string) bool {
	return strings.Contains(url, abstractPathMarker)
}

// IsAbstractRecord selects digest records whose paper link is an arXiv abstract page.
func IsAbstractRecord(rec types.PaperRecord) bool {
	return IsAbstractURL(rec.Links.Paper)
}

// ContentRegion returns the fragment of an abstract page that holds the
// extractable fields.
func ContentRegion(html string) (string, error) {
	region := contentRegionPattern.FindString(html)
	if region == "" {
		return "", ErrPatternNotFound
	}
	return region, nil
}

// PageFetcher downloads abstract pages and extracts their metadata.
type PageFetcher struct {
	Client    *http.Client
	UserAgent string
}

// Fetch retrieves url, isolates its content region, and extracts metadata.
// The breadcrumb identifier lives outside the region, so the identifier
// falls back to the URL path. The caller bounds the request through ctx.
func (f *PageFetcher) Fetch(ctx context.Context, url string) (types.ArxivMetadata, error) {
	body, err := httputil.Get(ctx, f.Client, url, httputil.Options{
		UserAgent: f.UserAgent,
		Accept:    "text/html",
	})
	if err != nil {
		return types.ArxivMetadata{}, err
	}

	region, err := ContentRegion(string(body))
	if err != nil {
		return types.ArxivMetadata{}, fmt.Errorf("%s: %w", url, err)
	}
	meta := Extract(region)
	if meta.ArxivID == nil {
		meta.ArxivID = IDFromURL(url)
	}
	return meta, nil
}

// IDFromURL returns the identifier in an abstract URL path
// ("https://arxiv.org/abs/2506.17298v2" → "2506.17298v2"), or nil.
func IDFromURL(url string) *string {
	idx := strings.LastIndex(url, "/abs/")
	if idx < 0 {
		return nil
	}
	id := url[idx+len("/abs/"):]
	if cut := strings.IndexAny(id, "?#"); cut >= 0 {
		id = id[:cut]
	}
	return nonEmpty(strings.Trim(id, "/"))
}
