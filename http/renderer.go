package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/herofetch/herofetch"
)

// DefaultRenderTimeout is the default timeout for page requests.
// Kept consistent with rod.DefaultRenderTimeout (10s).
const DefaultRenderTimeout = 10 * time.Second

// Ensure Renderer implements herofetch.Renderer at compile time.
var _ herofetch.Renderer = (*Renderer)(nil)

// Renderer retrieves HTML content from URLs using plain HTTP requests.
// Unlike rod.Renderer, this does not execute JavaScript and is suitable
// for static pages only.
type Renderer struct {
	client  *http.Client
	timeout time.Duration
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithRenderTimeout sets the timeout for page requests.
// Defaults to DefaultRenderTimeout (10s) if not specified.
func WithRenderTimeout(d time.Duration) RendererOption {
	return func(r *Renderer) {
		r.timeout = d
	}
}

// NewRenderer creates a new HTTP-based Renderer.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		timeout: DefaultRenderTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.client = &http.Client{
		Timeout: r.timeout,
	}

	return r
}

// Render retrieves the HTML content from the given URL.
func (r *Renderer) Render(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", herofetch.Errorf(herofetch.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP renderer this is a no-op since
// http.Client doesn't require explicit cleanup.
func (r *Renderer) Close() error {
	return nil
}
