package herofetch

import "context"

// Renderer retrieves rendered DOM HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Renderer interface {
	// Render navigates to the URL, waits for the page to load,
	// and returns the rendered HTML.
	// The context controls timeout and cancellation.
	Render(ctx context.Context, url string) (html string, err error)

	// Close releases rendering resources.
	// Must be called when the Renderer is no longer needed.
	Close() error
}
