// Package goquery provides a CSS-selector based implementation of
// herofetch.Document and herofetch.Locator over rendered HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/herofetch/herofetch"
)

// Ensure Document implements herofetch.Document at compile time.
var _ herofetch.Document = (*Document)(nil)

// Document wraps a parsed HTML document with attribute queries.
type Document struct {
	doc *goquery.Document
}

// Parse parses rendered HTML into a queryable Document.
func Parse(html string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, herofetch.Errorf(herofetch.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// QueryAttribute returns the attribute value of the first element matching
// the selector. A missing element, attribute, or empty value yields false.
func (d *Document) QueryAttribute(selector, attribute string) (string, bool) {
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", false
	}

	v, ok := sel.Attr(attribute)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}
