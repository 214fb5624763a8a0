package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/herofetch/herofetch"
	herohttp "github.com/herofetch/herofetch/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("implements herofetch.Renderer interface", func(t *testing.T) {
		t.Parallel()
		var _ herofetch.Renderer = herohttp.NewRenderer()
	})

	t.Run("returns page HTML", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html><body><figure><img src="/x.png"></figure></body></html>`))
		}))
		defer srv.Close()

		r := herohttp.NewRenderer()
		defer r.Close()

		html, err := r.Render(context.Background(), srv.URL+"/article/foo/")

		require.NoError(t, err)
		assert.Contains(t, html, "figure")
	})

	t.Run("non-OK status errors", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		r := herohttp.NewRenderer()
		_, err := r.Render(context.Background(), srv.URL+"/gone/")

		require.Error(t, err)
		assert.Equal(t, herofetch.EUNAVAILABLE, herofetch.ErrorCode(err))
	})
}
