// Package rod provides a browser-based implementation of herofetch.Renderer
// using headless Chrome, for pages that need JavaScript to render.
package rod

import (
	"context"
	"time"

	"github.com/go-rod/rod/lib/proto"
	"github.com/herofetch/herofetch"
)

// DefaultRenderTimeout is the default timeout for a single page render.
const DefaultRenderTimeout = 10 * time.Second

// Ensure Renderer implements herofetch.Renderer at compile time.
var _ herofetch.Renderer = (*Renderer)(nil)

// Renderer retrieves rendered HTML from URLs using Chrome browser automation.
// Each Render uses a fresh page so no in-page state leaks between URLs.
// Renderer is safe for concurrent use by multiple goroutines.
type Renderer struct {
	manager *BrowserManager
	timeout time.Duration
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRenderTimeout sets the timeout for each page render.
// Defaults to DefaultRenderTimeout (10s) if not specified.
func WithRenderTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		r.timeout = d
	}
}

// WithBrowserManager sets a custom BrowserManager, e.g. one with a
// different recycling threshold.
func WithBrowserManager(m *BrowserManager) Option {
	return func(r *Renderer) {
		r.manager = m
	}
}

// NewRenderer creates a new Renderer backed by a headless Chrome browser.
// Close must be called when the Renderer is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		timeout: DefaultRenderTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.manager == nil {
		m, err := NewBrowserManager()
		if err != nil {
			return nil, err
		}
		r.manager = m
	}

	return r, nil
}

// Render navigates to the URL in a new page, waits for load, and returns
// the rendered HTML.
func (r *Renderer) Render(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	browser := r.manager.Browser()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	r.manager.IncrementPageCount()

	return html, nil
}

// Close releases browser resources.
func (r *Renderer) Close() error {
	return r.manager.Close()
}
