// Package slog provides logging decorators for pipeline collaborators.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/herofetch/herofetch"
)

// Ensure LoggingDownloader implements herofetch.Downloader.
var _ herofetch.Downloader = (*LoggingDownloader)(nil)

// LoggingDownloader wraps a Downloader with debug logging.
type LoggingDownloader struct {
	next   herofetch.Downloader
	logger *slog.Logger
}

// NewLoggingDownloader creates a new LoggingDownloader.
func NewLoggingDownloader(next herofetch.Downloader, logger *slog.Logger) *LoggingDownloader {
	return &LoggingDownloader{next: next, logger: logger}
}

// Download logs the image URL and destination and delegates to the wrapped
// downloader.
func (d *LoggingDownloader) Download(ctx context.Context, imageURL, destPath string) (err error) {
	defer func(begin time.Time) {
		d.logger.Info("download",
			"url", imageURL,
			"dest", destPath,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Download(ctx, imageURL, destPath)
}
