package herofetch

import "context"

// Downloader fetches an image over HTTP and writes it to disk.
type Downloader interface {
	// Download issues a GET for imageURL and writes the response body to
	// destPath. A non-success status or transport error yields an error
	// with code EUNAVAILABLE; a filesystem failure yields EINTERNAL.
	// On success exactly one file exists at destPath; no partial files
	// are left behind on failure.
	Download(ctx context.Context, imageURL, destPath string) error
}
