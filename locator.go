package herofetch

// Document is a minimal queryable view of a rendered page.
// Implementations hide the underlying DOM representation so the locator
// algorithm can run against a real browser page, a parsed HTML document,
// or a test fake returning canned values.
type Document interface {
	// QueryAttribute returns the attribute value of the first element
	// matching the selector. Returns false if no element matches or the
	// attribute is missing or empty.
	QueryAttribute(selector, attribute string) (value string, ok bool)
}

// Locator determines the hero image URL for a rendered page.
type Locator interface {
	// Locate inspects the rendered HTML and returns the absolute URL of
	// the hero image. Returns ok=false if the page has no usable image;
	// a missing image is a null result, not an error.
	Locate(html string, sourceURL string) (ref string, ok bool, err error)
}
