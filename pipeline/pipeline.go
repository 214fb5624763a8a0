// Package pipeline orchestrates the hero-image batch run.
// It coordinates page rendering, image location, filename derivation, and
// downloading for each input URL, collecting per-URL outcomes.
package pipeline

import (
	"context"
	"path/filepath"
	"sync/atomic"

	"github.com/herofetch/herofetch"
	"github.com/herofetch/herofetch/fs"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds in-flight URLs when none is configured.
const DefaultConcurrency = 3

// Pipeline drives the per-URL fetch flow.
type Pipeline struct {
	Renderer   herofetch.Renderer
	Locator    herofetch.Locator
	Downloader herofetch.Downloader

	// Concurrency bounds in-flight URL tasks. Zero means DefaultConcurrency.
	Concurrency int
}

// ProgressEvent reports progress during a pipeline run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Status    herofetch.OutcomeStatus
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// urlResult pairs an outcome with its input position so the final report
// preserves input order regardless of completion order.
type urlResult struct {
	position int
	outcome  herofetch.Outcome
}

// Run processes every URL in cfg independently: render the page, locate
// the hero image, derive the destination filename, download. No single
// URL's failure stops the run. The output directory is created once,
// idempotently, before processing begins.
//
// The returned slice has one outcome per input URL, in input order.
// Per-URL failures are recorded in outcomes, not returned as an error;
// Run errors only on unusable config or an uncreatable output directory.
func (p *Pipeline) Run(ctx context.Context, cfg herofetch.Config, progress ProgressFunc) ([]herofetch.Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := fs.EnsureDir(cfg.OutputDir); err != nil {
		return nil, herofetch.Errorf(herofetch.EINTERNAL, "creating output directory %s: %v", cfg.OutputDir, err)
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(cfg.URLs)
	resultCh := make(chan urlResult, total)

	var completed atomic.Int64

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, url := range cfg.URLs {
			i, url := i, url
			g.Go(func() error {
				resultCh <- urlResult{position: i, outcome: p.processURL(gctx, url, cfg)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	outcomes := make([]herofetch.Outcome, total)
	for res := range resultCh {
		completed.Add(1)
		outcomes[res.position] = res.outcome

		if progress != nil {
			ev := ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       res.outcome.SourceURL,
				Status:    res.outcome.Status,
			}
			if res.outcome.Failed() {
				ev.Type = ProgressFailed
				ev.Error = res.outcome.Err
			}
			progress(ev)
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return outcomes, nil
}

// processURL runs the per-URL state flow:
// render → locate → {no image | download → {done | failed}}.
// Each transition happens at most once; there are no retries.
func (p *Pipeline) processURL(ctx context.Context, sourceURL string, cfg herofetch.Config) herofetch.Outcome {
	outcome := herofetch.Outcome{SourceURL: sourceURL}

	html, err := p.Renderer.Render(ctx, sourceURL)
	if err != nil {
		outcome.Status = herofetch.StatusNavigationFailed
		outcome.Err = err
		return outcome
	}

	ref, ok, err := p.Locator.Locate(html, sourceURL)
	if err != nil {
		outcome.Status = herofetch.StatusNavigationFailed
		outcome.Err = err
		return outcome
	}
	if !ok {
		outcome.Status = herofetch.StatusNoImage
		return outcome
	}

	destPath := filepath.Join(cfg.OutputDir, fs.Filename(sourceURL, ref, cfg))

	if err := p.Downloader.Download(ctx, ref, destPath); err != nil {
		outcome.Status = herofetch.StatusDownloadFailed
		outcome.Err = err
		return outcome
	}

	outcome.Status = herofetch.StatusDownloaded
	outcome.Path = destPath
	return outcome
}

// Summary aggregates outcome counts for reporting and exit status.
type Summary struct {
	Downloaded int
	NoImage    int
	Failed     int
}

// Summarize tallies outcomes by status.
func Summarize(outcomes []herofetch.Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch {
		case o.Status == herofetch.StatusDownloaded:
			s.Downloaded++
		case o.Status == herofetch.StatusNoImage:
			s.NoImage++
		case o.Failed():
			s.Failed++
		}
	}
	return s
}
