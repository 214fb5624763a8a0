package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/herofetch/herofetch"
)

// Ensure LoggingRenderer implements herofetch.Renderer.
var _ herofetch.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with debug logging.
type LoggingRenderer struct {
	next   herofetch.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next herofetch.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render logs the URL being rendered and delegates to the wrapped renderer.
func (r *LoggingRenderer) Render(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("render",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(ctx, url)
}

// Close delegates to the wrapped renderer.
func (r *LoggingRenderer) Close() error {
	return r.next.Close()
}
