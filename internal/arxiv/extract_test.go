// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-digest/pkg/types"
)

func readFixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "abs_page.html"))
	require.NoError(t, err)
	return string(data)
}

func str(s string) *string { return &s }

func TestExtract_FullPage(t *testing.T) {
	m := Extract(readFixture(t))

	assert.Equal(t, str("2506.17298"), m.ArxivID)
	assert.Equal(t, str("Computer Science > Computation and Language"), m.Category)
	assert.Equal(t, str("Sparse Mixture Routing for Efficient Experts"), m.Title)
	assert.Equal(t, []string{"Jane Lee", "Soo Kim", "Andrew Ng"}, m.Authors)
	assert.Equal(t, str("We study routing in sparse mixtures of experts. Results improve throughput."), m.Abstract)
	assert.Equal(t, str("26 pages, 9 figures"), m.Comments)
	assert.Equal(t, []string{
		"Computation and Language (cs.CL)",
		"Machine Learning (cs.LG)",
		"Artificial Intelligence (cs.AI)",
	}, m.Subjects)

	assert.Equal(t, types.ArxivLinks{
		PDF:  str("/pdf/2506.17298"),
		HTML: str("https://arxiv.org/html/2506.17298v1"),
		TeX:  str("/src/2506.17298"),
		DOI:  str("https://doi.org/10.48550/arXiv.2506.17298"),
	}, m.Links)

	require.NotNil(t, m.SubmissionHistory)
	assert.Contains(t, *m.SubmissionHistory, "Submission history From: Jane Lee")
	assert.Contains(t, *m.SubmissionHistory, "[v1] Fri, 20 Jun 2025 12:00:00 UTC (1,024 KB)")

	assert.Equal(t, []types.Reference{
		{Label: "NASA ADS", URL: str("https://ui.adsabs.harvard.edu/abs/arXiv:2506.17298")},
		{Label: "Google Scholar", URL: str("https://scholar.google.com/scholar_lookup?arxiv_id=2506.17298")},
		{Label: "Semantic Scholar (unavailable)", URL: nil},
	}, m.References)
}

func TestExtract_MissingReferencesKeepsOtherFields(t *testing.T) {
	html := `<div class="leftcolumn">
<h1 class="title mathjax"><span class="descriptor">Title:</span>Only Title</h1>
<blockquote class="abstract"><span class="descriptor">Abstract:</span>Only abstract.</blockquote>
<div style="clear:both;"></div>`

	m := Extract(html)

	assert.Equal(t, str("Only Title"), m.Title)
	assert.Equal(t, str("Only abstract."), m.Abstract)
	assert.NotNil(t, m.References)
	assert.Empty(t, m.References)
}

func TestExtract_EmptyDocument(t *testing.T) {
	m := Extract("")

	assert.Nil(t, m.ArxivID)
	assert.Nil(t, m.Category)
	assert.Nil(t, m.Title)
	assert.Nil(t, m.Abstract)
	assert.Nil(t, m.Comments)
	assert.Nil(t, m.SubmissionHistory)
	assert.Equal(t, types.ArxivLinks{}, m.Links)
	assert.NotNil(t, m.Authors)
	assert.Empty(t, m.Authors)
	assert.NotNil(t, m.Subjects)
	assert.Empty(t, m.Subjects)
	assert.NotNil(t, m.References)
	assert.Empty(t, m.References)
}

func TestExtract_MalformedMarkup(t *testing.T) {
	m := Extract(`<div class="authors"><a>Solo Author</a><h1 class="title">Title:Broken <b>markup`)

	assert.Equal(t, []string{"Solo Author"}, m.Authors)
	assert.Equal(t, str("Broken markup"), m.Title)
	assert.Nil(t, m.Abstract)
}

func TestExtract_ShortIdentifierIsAbsent(t *testing.T) {
	m := Extract(`<div class="header-breadcrumbs-mobile"><strong>arXiv:</strong></div>`)
	assert.Nil(t, m.ArxivID)
}

func TestExtract_ReferencesUseFollowingList(t *testing.T) {
	html := `<ul><li><a href="/before">Before</a></li></ul>
<h3>Other</h3>
<h3>References &amp; Citations</h3>
<div><ul><li><a href="/inspire">INSPIRE HEP</a></li></ul></div>
<ul><li>Later list</li></ul>`

	m := Extract(html)
	assert.Equal(t, []types.Reference{{Label: "INSPIRE HEP", URL: str("/inspire")}}, m.References)
}

func TestExtract_SubmissionHistorySeparatesAdjacentNodes(t *testing.T) {
	html := `<div class="submission-history"><h2>Submission history</h2>From: Jane Lee<br/><strong>[v1]</strong>Fri, 20 Jun 2025</div>`

	m := Extract(html)
	require.NotNil(t, m.SubmissionHistory)
	assert.Equal(t, "Submission history From: Jane Lee [v1] Fri, 20 Jun 2025", *m.SubmissionHistory)
}

func TestStripLabel(t *testing.T) {
	assert.Equal(t, "Body", stripLabel("Abstract: Body", "Abstract:"))
	assert.Equal(t, "No label", stripLabel("No label", "Abstract:"))
}
