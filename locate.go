package herofetch

import (
	"net/url"
	"strings"
)

// Selectors and attributes consulted by LocateHeroImage.
const (
	ogImageSelector  = `meta[property="og:image"]`
	ogImageAttribute = "content"
	figureSelector   = "figure img"
	figureAttribute  = "src"
)

// videoPathSegment marks a page as a video page.
const videoPathSegment = "/videos/"

// LocateHeroImage determines the hero image URL for a rendered page.
//
// Video pages (path containing "/videos/") prefer the og:image meta tag;
// any other page, or a video page without a usable og:image, falls back to
// the first image nested inside a figure element. Relative references are
// resolved against the source URL, so a returned ref is always absolute.
// A missing element or attribute yields ok=false, never an error.
func LocateHeroImage(doc Document, sourceURL string) (ref string, ok bool) {
	if isVideoPage(sourceURL) {
		if v, found := doc.QueryAttribute(ogImageSelector, ogImageAttribute); found {
			ref = v
		}
	}

	if ref == "" {
		if v, found := doc.QueryAttribute(figureSelector, figureAttribute); found {
			ref = v
		}
	}

	if ref == "" {
		return "", false
	}

	return resolveImageURL(sourceURL, ref), true
}

// isVideoPage reports whether the URL's path identifies a video page.
func isVideoPage(sourceURL string) bool {
	u, err := url.Parse(sourceURL)
	if err != nil {
		return strings.Contains(sourceURL, videoPathSegment)
	}
	return strings.Contains(u.Path, videoPathSegment)
}

// resolveImageURL resolves ref against the page URL. Absolute refs pass
// through unchanged; unparsable inputs are returned as-is.
func resolveImageURL(sourceURL, ref string) string {
	base, err := url.Parse(sourceURL)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(r).String()
}
