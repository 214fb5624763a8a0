package mock

import "github.com/herofetch/herofetch"

var _ herofetch.Document = (*Document)(nil)

// Document is a mock implementation of herofetch.Document.
type Document struct {
	QueryAttributeFn func(selector, attribute string) (string, bool)
}

func (d *Document) QueryAttribute(selector, attribute string) (string, bool) {
	return d.QueryAttributeFn(selector, attribute)
}
