package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/herofetch/herofetch"
	"github.com/herofetch/herofetch/goquery"
	herohttp "github.com/herofetch/herofetch/http"
	"github.com/herofetch/herofetch/pipeline"
	"github.com/herofetch/herofetch/rod"
	heroslog "github.com/herofetch/herofetch/slog"
	"github.com/schollz/progressbar/v3"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments. Returns a non-nil error
// (and therefore a nonzero exit status) when parsing fails or when at
// least one URL failed; all URLs are attempted regardless.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("herofetch"),
		kong.Description("Download the hero image for each article or video page in a list of URLs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	urls := cli.URLs
	if cli.URLsFile != "" {
		fromFile, err := readURLsFile(cli.URLsFile)
		if err != nil {
			return err
		}
		urls = append(urls, fromFile...)
	}
	if len(urls) == 0 {
		return fmt.Errorf("no URLs provided")
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	timeout := cli.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	// Wire the renderer: headless Chrome by default, plain HTTP when the
	// pages don't need JavaScript.
	var renderer herofetch.Renderer
	if cli.NoBrowser {
		renderer = herohttp.NewRenderer(herohttp.WithRenderTimeout(timeout))
	} else {
		rodRenderer, err := rod.NewRenderer(rod.WithRenderTimeout(timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		renderer = rodRenderer
	}
	renderer = rod.NewLoggingRenderer(renderer, logger)
	defer renderer.Close()

	p := &pipeline.Pipeline{
		Renderer:    renderer,
		Locator:     heroslog.NewLoggingLocator(goquery.NewLocator(), logger),
		Downloader:  heroslog.NewLoggingDownloader(herohttp.NewDownloader(herohttp.WithDownloadTimeout(timeout)), logger),
		Concurrency: cli.Concurrency,
	}

	cfg := herofetch.Config{
		URLs:         urls,
		OutputDir:    cli.Out,
		Disambiguate: cli.Disambiguate,
	}

	// The bar and the verbose log both write to stderr; keep one of them.
	var bar *progressbar.ProgressBar
	if !cli.Verbose {
		bar = progressbar.NewOptions(len(urls),
			progressbar.OptionSetWriter(stderr),
			progressbar.OptionSetDescription("fetching"),
		)
	}

	progress := func(ev pipeline.ProgressEvent) {
		if bar == nil {
			return
		}
		switch ev.Type {
		case pipeline.ProgressCompleted, pipeline.ProgressFailed:
			_ = bar.Add(1)
		case pipeline.ProgressFinished:
			_ = bar.Finish()
			fmt.Fprintln(stderr)
		}
	}

	outcomes, err := p.Run(ctx, cfg, progress)
	if err != nil {
		return err
	}

	writeReport(stdout, outcomes)

	summary := pipeline.Summarize(outcomes)
	fmt.Fprintf(stdout, "Downloaded %d, no image %d, failed %d\n",
		summary.Downloaded, summary.NoImage, summary.Failed)

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d URLs failed", summary.Failed, len(outcomes))
	}
	return nil
}
