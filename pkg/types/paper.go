// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Link labels promoted to named fields of Links.
const (
	LabelPaper = "Paper"
	LabelTweet = "Tweet"
)

// Link is one labelled URL from a digest row.
type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Links holds the links of one digest row. Paper and Tweet are the
// well-known labels; every other label lands in Other, in first-seen order.
type Links struct {
	// Paper is the primary link (usually an arXiv abstract page).
	Paper string `json:"paper" yaml:"paper"`

	// Tweet is the secondary link announcing the paper.
	Tweet string `json:"tweet" yaml:"tweet"`

	// Other holds the remaining labels (Code, Blog, ...).
	Other []Link `json:"other,omitempty" yaml:"other,omitempty"`
}

// Set classifies a link by label. A repeated auxiliary label replaces
// the earlier URL but keeps its position.
func (l *Links) Set(label, url string) {
	switch label {
	case LabelPaper:
		l.Paper = url
	case LabelTweet:
		l.Tweet = url
	default:
		for i := range l.Other {
			if l.Other[i].Label == label {
				l.Other[i].URL = url
				return
			}
		}
		l.Other = append(l.Other, Link{Label: label, URL: url})
	}
}

// IsEmpty reports whether no link of any label is present.
func (l Links) IsEmpty() bool {
	return l.Paper == "" && l.Tweet == "" && len(l.Other) == 0
}

// OtherJSON serializes the auxiliary links as a JSON object string such as
// {"Code": "https://c"}, keys in first-seen order. It returns "" when there
// are no auxiliary links.
func (l Links) OtherJSON() string {
	if len(l.Other) == 0 {
		return ""
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, o := range l.Other {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.Write(jsonString(o.Label))
		buf.WriteString(": ")
		buf.Write(jsonString(o.URL))
	}
	buf.WriteByte('}')
	return buf.String()
}

// ParseOtherLinks decodes a string produced by OtherJSON, keeping key order.
func ParseOtherLinks(s string) ([]Link, error) {
	if s == "" {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("other links: expected JSON object, got %v", tok)
	}
	var links []Link
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)
		var url string
		if err := dec.Decode(&url); err != nil {
			return nil, err
		}
		links = append(links, Link{Label: key, URL: url})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return links, nil
}

func jsonString(s string) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return bytes.TrimRight(buf.Bytes(), "\n")
}

// PaperRecord is one normalized row extracted from a digest table.
type PaperRecord struct {
	// Heading is the section label the paper was listed under.
	Heading string `json:"heading" yaml:"heading"`

	// Title is the paper title with markdown markup stripped.
	Title string `json:"title" yaml:"title"`

	// Links holds every link found in the row's links cell.
	Links Links `json:"links" yaml:"links"`
}

// Valid reports whether the record carries a title and at least one link.
func (r PaperRecord) Valid() bool {
	return r.Title != "" && !r.Links.IsEmpty()
}
