package rod_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/herofetch/herofetch/mock"
	"github.com/herofetch/herofetch/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRenderer(t *testing.T) {
	t.Parallel()

	t.Run("logs url and delegates", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.Renderer{
			RenderFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}

		r := rod.NewLoggingRenderer(next, logger)
		html, err := r.Render(context.Background(), "https://example.com/article/foo/")

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Contains(t, buf.String(), "render")
		assert.Contains(t, buf.String(), "https://example.com/article/foo/")
	})

	t.Run("close delegates", func(t *testing.T) {
		t.Parallel()

		closed := false
		next := &mock.Renderer{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		r := rod.NewLoggingRenderer(next, slog.New(slog.NewTextHandler(io.Discard, nil)))
		require.NoError(t, r.Close())
		assert.True(t, closed)
	})
}
