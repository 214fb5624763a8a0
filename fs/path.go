// Package fs provides filename derivation and directory handling for
// downloaded images.
package fs

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/herofetch/herofetch"
)

// MaxBaseLen caps the sanitized base name length.
const MaxBaseLen = 100

// SanitizeURL converts a source URL into a filesystem-safe base name.
// The scheme is stripped, trailing slashes are trimmed, and every character
// outside [A-Za-z0-9_-] becomes an underscore. Deterministic; never emits
// path separators. Example: https://example.com/article/foo/ →
// example_com_article_foo.
func SanitizeURL(rawURL string) string {
	s := rawURL
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	s = strings.TrimRight(s, "/")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	out := b.String()
	if len(out) > MaxBaseLen {
		out = out[:MaxBaseLen]
	}
	return out
}

// ImageExt derives the destination extension from the image URL's path.
// Extensions outside the allow-list (and URLs with no extension at all)
// fall back to defaultExt. The response body is never sniffed.
func ImageExt(imageURL, defaultExt string, allowed []string) string {
	p := imageURL
	if u, err := url.Parse(imageURL); err == nil {
		p = u.Path
	}

	ext := strings.ToLower(path.Ext(p))
	for _, a := range allowed {
		if ext == a {
			return ext
		}
	}
	return defaultExt
}

// Filename computes the destination filename for a source page and its
// hero image URL: sanitize(sourceURL) + extension. With cfg.Disambiguate
// set, an 8-hex hash of the full source URL is appended to the base so
// colliding sanitized names stay distinct.
func Filename(sourceURL, imageURL string, cfg herofetch.Config) string {
	base := SanitizeURL(sourceURL)
	if cfg.Disambiguate {
		base += "-" + shortHash(sourceURL)
	}

	defaultExt := cfg.DefaultExt
	if defaultExt == "" {
		defaultExt = herofetch.DefaultExt
	}
	allowed := cfg.AllowedExts
	if allowed == nil {
		allowed = herofetch.DefaultAllowedExts()
	}

	return base + ImageExt(imageURL, defaultExt, allowed)
}

// shortHash returns the first 8 hex digits of the xxhash of s.
func shortHash(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))[:8]
}
