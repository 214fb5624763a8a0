package slog

import (
	"log/slog"
	"time"

	"github.com/herofetch/herofetch"
)

// Ensure LoggingLocator implements herofetch.Locator.
var _ herofetch.Locator = (*LoggingLocator)(nil)

// LoggingLocator wraps a Locator with debug logging.
type LoggingLocator struct {
	next   herofetch.Locator
	logger *slog.Logger
}

// NewLoggingLocator creates a new LoggingLocator.
func NewLoggingLocator(next herofetch.Locator, logger *slog.Logger) *LoggingLocator {
	return &LoggingLocator{next: next, logger: logger}
}

// Locate logs the located image ref and delegates to the wrapped locator.
func (l *LoggingLocator) Locate(html, sourceURL string) (ref string, ok bool, err error) {
	defer func(begin time.Time) {
		l.logger.Info("locate",
			"source", sourceURL,
			"ref", ref,
			"found", ok,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Locate(html, sourceURL)
}
