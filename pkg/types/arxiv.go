// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ArxivLinks holds the download and identifier links from an abstract page.
// A nil field means the page did not offer that link.
type ArxivLinks struct {
	PDF  *string `json:"pdf" yaml:"pdf"`
	HTML *string `json:"html" yaml:"html"`
	TeX  *string `json:"tex" yaml:"tex"`
	DOI  *string `json:"doi" yaml:"doi"`
}

// Reference is one entry of the "References & Citations" list.
type Reference struct {
	Label string  `json:"label" yaml:"label"`
	URL   *string `json:"url" yaml:"url"`
}

// ArxivMetadata holds the bibliographic fields scraped from one arXiv
// abstract page. Optional scalar fields are nil when the page lacks them;
// list fields are empty, never nil.
type ArxivMetadata struct {
	// ArxivID is the identifier from the breadcrumb (e.g. "2506.17298").
	ArxivID *string `json:"arxiv_id" yaml:"arxiv_id"`

	// Category is the primary archive heading (e.g. "Computer Science > Computation and Language").
	Category *string `json:"category" yaml:"category"`

	Title    *string  `json:"title" yaml:"title"`
	Authors  []string `json:"authors" yaml:"authors"`
	Abstract *string  `json:"abstract" yaml:"abstract"`
	Comments *string  `json:"comments" yaml:"comments"`

	// Subjects lists the subject classes, primary first.
	Subjects []string `json:"subjects" yaml:"subjects"`

	Links ArxivLinks `json:"links" yaml:"links"`

	// SubmissionHistory is the whitespace-normalized submission history block.
	SubmissionHistory *string `json:"submission_history" yaml:"submission_history"`

	References []Reference `json:"references" yaml:"references"`
}

// FetchResult is the outcome of fetching and extracting one abstract page.
// Exactly one of Metadata and Error is set.
type FetchResult struct {
	URL      string         `json:"url" yaml:"url"`
	Metadata *ArxivMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Error    string         `json:"error,omitempty" yaml:"error,omitempty"`
}

// OK reports whether the fetch produced metadata.
func (r FetchResult) OK() bool {
	return r.Metadata != nil && r.Error == ""
}
