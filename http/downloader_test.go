package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/herofetch/herofetch"
	herohttp "github.com/herofetch/herofetch/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloader_Download(t *testing.T) {
	t.Parallel()

	t.Run("implements herofetch.Downloader interface", func(t *testing.T) {
		t.Parallel()
		var _ herofetch.Downloader = herohttp.NewDownloader()
	})

	t.Run("writes response body to destination", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte("png-bytes"))
		}))
		defer srv.Close()

		dest := filepath.Join(t.TempDir(), "example_com_article_foo.png")
		dl := herohttp.NewDownloader()

		err := dl.Download(context.Background(), srv.URL+"/img/cover.png", dest)

		require.NoError(t, err)
		got, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), got)
	})

	t.Run("404 yields unavailable and writes no file", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		dir := t.TempDir()
		dest := filepath.Join(dir, "missing.jpg")
		dl := herohttp.NewDownloader()

		err := dl.Download(context.Background(), srv.URL+"/gone.jpg", dest)

		require.Error(t, err)
		assert.Equal(t, herofetch.EUNAVAILABLE, herofetch.ErrorCode(err))

		_, statErr := os.Stat(dest)
		assert.True(t, os.IsNotExist(statErr))

		// No temp leftovers either.
		entries, readErr := os.ReadDir(dir)
		require.NoError(t, readErr)
		assert.Empty(t, entries)
	})

	t.Run("transport failure yields unavailable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // refuse connections

		dl := herohttp.NewDownloader()
		err := dl.Download(context.Background(), srv.URL+"/x.jpg", filepath.Join(t.TempDir(), "x.jpg"))

		require.Error(t, err)
		assert.Equal(t, herofetch.EUNAVAILABLE, herofetch.ErrorCode(err))
	})

	t.Run("unwritable destination yields internal", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("bytes"))
		}))
		defer srv.Close()

		dl := herohttp.NewDownloader()
		dest := filepath.Join(t.TempDir(), "no-such-dir", "x.jpg")

		err := dl.Download(context.Background(), srv.URL+"/x.jpg", dest)

		require.Error(t, err)
		assert.Equal(t, herofetch.EINTERNAL, herofetch.ErrorCode(err))
	})

	t.Run("overwrites an existing file at the destination", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("new-bytes"))
		}))
		defer srv.Close()

		dest := filepath.Join(t.TempDir(), "x.jpg")
		require.NoError(t, os.WriteFile(dest, []byte("old-bytes"), 0644))

		dl := herohttp.NewDownloader()
		err := dl.Download(context.Background(), srv.URL+"/x.jpg", dest)

		require.NoError(t, err)
		got, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, []byte("new-bytes"), got)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		dl := herohttp.NewDownloader()
		err := dl.Download(ctx, srv.URL+"/x.jpg", filepath.Join(t.TempDir(), "x.jpg"))

		assert.Error(t, err)
	})
}
