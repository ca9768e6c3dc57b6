package fragments

import (
	"errors"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// Document resolves fragment selectors against a parsed HTML page. Template
// blocks are expected to be non-rendering elements (script blocks with a
// template content type, or <template> elements) whose inner markup is the
// fragment text.
type Document struct {
	doc *goquery.Document
}

// NewDocument wraps an already parsed page.
func NewDocument(doc *goquery.Document) (*Document, error) {
	if doc == nil {
		return nil, errors.New("fragments: document is required")
	}
	return &Document{doc: doc}, nil
}

// ParseDocument reads and parses a page from r.
func ParseDocument(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("fragments: parse document: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Fragment returns the inner markup of the first element matching selector.
// A selector that matches nothing reports ErrNotFound.
func (d *Document) Fragment(selector string) (string, error) {
	if d == nil || d.doc == nil {
		return "", errors.New("fragments: document is nil")
	}

	match := d.doc.Find(selector).First()
	if match.Length() == 0 {
		return "", fmt.Errorf("%w: %q", ErrNotFound, selector)
	}

	// Script-like template blocks hold their markup as raw text; reading
	// them through Html would escape it.
	switch goquery.NodeName(match) {
	case "script", "style":
		return match.Text(), nil
	}

	markup, err := match.Html()
	if err != nil {
		return "", fmt.Errorf("fragments: read fragment %q: %w", selector, err)
	}
	return markup, nil
}
