package herofetch

// OutcomeStatus classifies what happened when processing one input URL.
type OutcomeStatus string

// Per-URL outcome statuses.
const (
	// StatusDownloaded means the hero image was saved to Outcome.Path.
	StatusDownloaded OutcomeStatus = "downloaded"

	// StatusNoImage means the page rendered but exposed no usable hero
	// image. This is a null result, not a failure.
	StatusNoImage OutcomeStatus = "no_image"

	// StatusNavigationFailed means the page did not load or render.
	StatusNavigationFailed OutcomeStatus = "navigation_failed"

	// StatusDownloadFailed means an image URL was found but the download
	// or the file write failed.
	StatusDownloadFailed OutcomeStatus = "download_failed"
)

// Outcome describes the result of processing one input URL.
type Outcome struct {
	SourceURL string
	Status    OutcomeStatus

	// Path is the destination file path, set when Status is StatusDownloaded.
	Path string

	// Err holds the failure cause for StatusNavigationFailed and
	// StatusDownloadFailed.
	Err error
}

// Failed reports whether the outcome counts toward a nonzero exit status.
// A missing image is not a failure.
func (o Outcome) Failed() bool {
	return o.Status == StatusNavigationFailed || o.Status == StatusDownloadFailed
}
