package goquery

import "github.com/herofetch/herofetch"

// Ensure Locator implements herofetch.Locator at compile time.
var _ herofetch.Locator = (*Locator)(nil)

// Locator finds hero image URLs by parsing rendered HTML with goquery and
// delegating to the shared location algorithm.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate parses the HTML and returns the absolute hero image URL.
// A page without a usable image yields ok=false; only parse failures error.
func (l *Locator) Locate(html, sourceURL string) (string, bool, error) {
	doc, err := Parse(html)
	if err != nil {
		return "", false, err
	}

	ref, ok := herofetch.LocateHeroImage(doc, sourceURL)
	return ref, ok, nil
}
