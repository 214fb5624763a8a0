package mock

import "github.com/herofetch/herofetch"

var _ herofetch.Locator = (*Locator)(nil)

// Locator is a mock implementation of herofetch.Locator.
type Locator struct {
	LocateFn func(html, sourceURL string) (string, bool, error)
}

func (l *Locator) Locate(html, sourceURL string) (string, bool, error) {
	return l.LocateFn(html, sourceURL)
}
