// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-digest/pkg/types"
)

func TestIsAbstractURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://arxiv.org/abs/2506.17298", true},
		{"http://arxiv.org/abs/2506.17298v2", true},
		{"https://arxiv.org/pdf/2506.17298", false},
		{"https://openreview.net/forum?id=abc", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAbstractURL(tt.url))
		})
	}
}

func TestIsAbstractRecord(t *testing.T) {
	rec := types.PaperRecord{Title: "T", Links: types.Links{Paper: "https://arxiv.org/abs/1"}}
	assert.True(t, IsAbstractRecord(rec))

	rec.Links.Paper = "https://example.com/paper.pdf"
	assert.False(t, IsAbstractRecord(rec))
}

func TestContentRegion(t *testing.T) {
	region, err := ContentRegion(readFixture(t))
	require.NoError(t, err)

	assert.Contains(t, region, `<div class="leftcolumn">`)
	assert.Contains(t, region, "References &amp; Citations")
	assert.NotContains(t, region, "header-breadcrumbs-mobile")
	assert.NotContains(t, region, "<footer>")

	_, err = ContentRegion("<html><body>moved</body></html>")
	assert.ErrorIs(t, err, ErrPatternNotFound)
}

func TestPageFetcher_Fetch(t *testing.T) {
	page := readFixture(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/abs/2506.17298", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(page))
	})
	mux.HandleFunc("/abs/moved", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html><body>This page has moved.</body></html>"))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	f := &PageFetcher{Client: ts.Client(), UserAgent: "test/0.1"}

	m, err := f.Fetch(context.Background(), ts.URL+"/abs/2506.17298")
	require.NoError(t, err)
	// The breadcrumb sits outside the content region; the id comes from the URL.
	assert.Equal(t, str("2506.17298"), m.ArxivID)
	assert.Equal(t, str("Sparse Mixture Routing for Efficient Experts"), m.Title)
	assert.Len(t, m.References, 3)

	_, err = f.Fetch(context.Background(), ts.URL+"/abs/moved")
	assert.ErrorIs(t, err, ErrPatternNotFound)

	_, err = f.Fetch(context.Background(), ts.URL+"/abs/missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestIDFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want *string
	}{
		{"https://arxiv.org/abs/2506.17298", str("2506.17298")},
		{"https://arxiv.org/abs/2506.17298v2?context=cs", str("2506.17298v2")},
		{"https://arxiv.org/abs/hep-th/9901001/", str("hep-th/9901001")},
		{"https://arxiv.org/abs/", nil},
		{"https://example.com/paper", nil},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, IDFromURL(tt.url))
		})
	}
}
