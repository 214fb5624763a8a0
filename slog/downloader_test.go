package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/herofetch/herofetch"
	"github.com/herofetch/herofetch/mock"
	heroslog "github.com/herofetch/herofetch/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDownloader(t *testing.T) {
	t.Parallel()

	t.Run("logs outcome and delegates", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		next := &mock.Downloader{
			DownloadFn: func(ctx context.Context, imageURL, destPath string) error {
				return herofetch.Errorf(herofetch.EUNAVAILABLE, "HTTP 404 for %s", imageURL)
			},
		}

		d := heroslog.NewLoggingDownloader(next, logger)
		err := d.Download(context.Background(), "https://example.com/x.png", "images/x.png")

		require.Error(t, err)
		assert.Equal(t, herofetch.EUNAVAILABLE, herofetch.ErrorCode(err))
		assert.Contains(t, buf.String(), "download")
		assert.Contains(t, buf.String(), "images/x.png")
	})
}

func TestLoggingLocator(t *testing.T) {
	t.Parallel()

	t.Run("logs located ref and delegates", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		next := &mock.Locator{
			LocateFn: func(html, sourceURL string) (string, bool, error) {
				return "https://example.com/img/cover.png", true, nil
			},
		}

		l := heroslog.NewLoggingLocator(next, logger)
		ref, ok, err := l.Locate("<html></html>", "https://example.com/article/foo/")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "https://example.com/img/cover.png", ref)
		assert.Contains(t, buf.String(), "locate")
		assert.Contains(t, buf.String(), "found=true")
	})
}
