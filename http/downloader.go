// Package http provides HTTP-based implementations of herofetch.Downloader
// and a static (no-JS) herofetch.Renderer.
package http

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/herofetch/herofetch"
)

// DefaultDownloadTimeout is the default timeout for image downloads.
const DefaultDownloadTimeout = 10 * time.Second

// Ensure Downloader implements herofetch.Downloader at compile time.
var _ herofetch.Downloader = (*Downloader)(nil)

// Downloader fetches images over HTTP and writes them to disk.
// Bodies are streamed to a uniquely named temporary file next to the
// destination and renamed into place on success, so a failed download
// never leaves a partial file at the destination path.
type Downloader struct {
	client  *http.Client
	timeout time.Duration
}

// DownloaderOption configures a Downloader.
type DownloaderOption func(*Downloader)

// WithDownloadTimeout sets the timeout for each download.
// Defaults to DefaultDownloadTimeout (10s) if not specified.
func WithDownloadTimeout(d time.Duration) DownloaderOption {
	return func(dl *Downloader) {
		dl.timeout = d
	}
}

// NewDownloader creates a new HTTP-based Downloader.
func NewDownloader(opts ...DownloaderOption) *Downloader {
	dl := &Downloader{
		timeout: DefaultDownloadTimeout,
	}
	for _, opt := range opts {
		opt(dl)
	}

	dl.client = &http.Client{
		Timeout: dl.timeout,
	}

	return dl
}

// Download issues a GET for imageURL and writes the body to destPath.
func (d *Downloader) Download(ctx context.Context, imageURL, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return herofetch.Errorf(herofetch.EINVALID, "invalid image URL %s: %v", imageURL, err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return herofetch.Errorf(herofetch.EUNAVAILABLE, "fetching %s: %v", imageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return herofetch.Errorf(herofetch.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, imageURL)
	}

	tmpPath := destPath + ".tmp-" + uuid.NewString()
	f, err := os.Create(tmpPath)
	if err != nil {
		return herofetch.Errorf(herofetch.EINTERNAL, "creating %s: %v", tmpPath, err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return herofetch.Errorf(herofetch.EINTERNAL, "writing %s: %v", tmpPath, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return herofetch.Errorf(herofetch.EINTERNAL, "closing %s: %v", tmpPath, err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return herofetch.Errorf(herofetch.EINTERNAL, "renaming to %s: %v", destPath, err)
	}

	return nil
}
