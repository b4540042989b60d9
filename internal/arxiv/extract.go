// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv scrapes bibliographic metadata from arXiv abstract pages.
package arxiv

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/paper-digest/pkg/types"
)

// idPrefixLen is the length of the "arXiv:" label in front of the breadcrumb identifier.
const idPrefixLen = len("arXiv:")

// Selectors for the fields of an abstract page.
const (
	selArxivID           = ".header-breadcrumbs-mobile strong"
	selCategory          = "div.subheader > h1"
	selTitle             = "h1.title"
	selAbstract          = "blockquote.abstract"
	selComments          = "td.comments"
	selAuthors           = "div.authors a"
	selSubjects          = "td.tablecell.subjects"
	selDOI               = "a#arxiv-doi-link"
	selSubmissionHistory = "div.submission-history"
)

// Extract builds ArxivMetadata from an abstract page or its content region.
// Every field is located independently; a field the page lacks is left nil
// or empty and never affects the others. Extract does not fail: input that
// cannot be parsed yields an empty object.
func Extract(html string) types.ArxivMetadata {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return newBuilder(nil).meta
	}
	b := newBuilder(doc)
	b.arxivID()
	b.category()
	b.title()
	b.authors()
	b.abstract()
	b.comments()
	b.subjects()
	b.links()
	b.submissionHistory()
	b.references()
	return b.meta
}

// builder accumulates optional fields, one rule per field.
type builder struct {
	doc  *goquery.Document
	meta types.ArxivMetadata
}

func newBuilder(doc *goquery.Document) *builder {
	return &builder{
		doc: doc,
		meta: types.ArxivMetadata{
			Authors:    []string{},
			Subjects:   []string{},
			References: []types.Reference{},
		},
	}
}

func (b *builder) arxivID() {
	text, ok := b.text(selArxivID)
	if !ok {
		return
	}
	runes := []rune(text)
	if len(runes) <= idPrefixLen {
		return
	}
	b.meta.ArxivID = nonEmpty(strings.TrimSpace(string(runes[idPrefixLen:])))
}

func (b *builder) category() {
	if text, ok := b.text(selCategory); ok {
		b.meta.Category = nonEmpty(text)
	}
}

func (b *builder) title() {
	if text, ok := b.text(selTitle); ok {
		b.meta.Title = nonEmpty(stripLabel(text, "Title:"))
	}
}

func (b *builder) abstract() {
	if text, ok := b.text(selAbstract); ok {
		b.meta.Abstract = nonEmpty(stripLabel(text, "Abstract:"))
	}
}

func (b *builder) comments() {
	if text, ok := b.text(selComments); ok {
		b.meta.Comments = nonEmpty(stripLabel(text, "Comments:"))
	}
}

func (b *builder) authors() {
	if b.doc == nil {
		return
	}
	b.doc.Find(selAuthors).Each(func(_ int, a *goquery.Selection) {
		if name := normalizeSpace(a.Text()); name != "" {
			b.meta.Authors = append(b.meta.Authors, name)
		}
	})
}

func (b *builder) subjects() {
	if b.doc == nil {
		return
	}
	cell := b.doc.Find(selSubjects).First()
	if cell.Length() == 0 {
		return
	}
	for _, piece := range strings.Split(cell.Text(), ";") {
		piece = strings.TrimSpace(strings.Trim(strings.TrimSpace(piece), " ,"))
		if piece != "" {
			b.meta.Subjects = append(b.meta.Subjects, normalizeSpace(piece))
		}
	}
}

func (b *builder) links() {
	if b.doc == nil {
		return
	}
	b.meta.Links.PDF = b.anchorHref("PDF")
	b.meta.Links.HTML = b.anchorHref("HTML")
	b.meta.Links.TeX = b.anchorHref("TeX Source")
	if href, ok := b.doc.Find(selDOI).First().Attr("href"); ok {
		b.meta.Links.DOI = &href
	}
}

// anchorHref returns the href of the first anchor whose text contains label.
func (b *builder) anchorHref(label string) *string {
	var href *string
	b.doc.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if !strings.Contains(a.Text(), label) {
			return true
		}
		if h, ok := a.Attr("href"); ok {
			href = &h
		}
		return false
	})
	return href
}

func (b *builder) submissionHistory() {
	if b.doc == nil {
		return
	}
	sel := b.doc.Find(selSubmissionHistory).First()
	if sel.Length() == 0 {
		return
	}
	b.meta.SubmissionHistory = nonEmpty(normalizeSpace(spacedText(sel)))
}

// references reads the first list that follows a "References" h3 in
// document order.
func (b *builder) references() {
	if b.doc == nil {
		return
	}
	var list *goquery.Selection
	seenHeading := false
	b.doc.Find("h3, ul").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if goquery.NodeName(s) == "h3" {
			if strings.Contains(s.Text(), "References") {
				seenHeading = true
			}
			return true
		}
		if seenHeading {
			list = s
			return false
		}
		return true
	})
	if list == nil {
		return
	}

	list.Find("li").Each(func(_ int, li *goquery.Selection) {
		ref := types.Reference{}
		a := li.Find("a").First()
		if a.Length() > 0 {
			ref.Label = normalizeSpace(a.Text())
			if href, ok := a.Attr("href"); ok {
				ref.URL = &href
			}
		} else {
			ref.Label = normalizeSpace(li.Text())
		}
		b.meta.References = append(b.meta.References, ref)
	})
}

// text returns the whitespace-normalized text of the first match.
func (b *builder) text(selector string) (string, bool) {
	if b.doc == nil {
		return "", false
	}
	sel := b.doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", false
	}
	return normalizeSpace(sel.Text()), true
}

// spacedText joins the text nodes under sel with a space, so adjacent
// elements such as "<h2>..</h2>From:" do not run together.
func spacedText(sel *goquery.Selection) string {
	var parts []string
	sel.Contents().Each(func(_ int, c *goquery.Selection) {
		switch goquery.NodeName(c) {
		case "#text":
			parts = append(parts, c.Text())
		case "#comment":
		default:
			parts = append(parts, spacedText(c))
		}
	})
	return strings.Join(parts, " ")
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// stripLabel removes a leading field label such as "Abstract:".
func stripLabel(text, label string) string {
	if strings.HasPrefix(text, label) {
		return strings.TrimSpace(text[len(label):])
	}
	return text
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
