package mock

import (
	"context"

	"github.com/herofetch/herofetch"
)

var _ herofetch.Downloader = (*Downloader)(nil)

// Downloader is a mock implementation of herofetch.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, imageURL, destPath string) error
}

func (d *Downloader) Download(ctx context.Context, imageURL, destPath string) error {
	return d.DownloadFn(ctx, imageURL, destPath)
}
