package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/herofetch/herofetch"
)

// writeReport prints one line per outcome, in input order, with enough
// context to diagnose and retry a URL manually.
func writeReport(w io.Writer, outcomes []herofetch.Outcome) {
	for _, o := range outcomes {
		switch o.Status {
		case herofetch.StatusDownloaded:
			fmt.Fprintf(w, "ok       %s -> %s\n", o.SourceURL, o.Path)
		case herofetch.StatusNoImage:
			fmt.Fprintf(w, "no image %s\n", o.SourceURL)
		case herofetch.StatusNavigationFailed:
			fmt.Fprintf(w, "nav fail %s: %s\n", o.SourceURL, failureText(o.Err))
		case herofetch.StatusDownloadFailed:
			fmt.Fprintf(w, "dl fail  %s: %s\n", o.SourceURL, failureText(o.Err))
		}
	}
}

// failureText prefers the application error message; navigation errors from
// the browser arrive as plain errors and are printed as-is.
func failureText(err error) string {
	if err == nil {
		return "unknown"
	}
	var e *herofetch.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
