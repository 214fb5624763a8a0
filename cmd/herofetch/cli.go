package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Out          string        `short:"o" default:"images" help:"Output directory for downloaded images"`
	Concurrency  int           `short:"c" default:"3" help:"Concurrent URL limit"`
	Timeout      time.Duration `short:"t" default:"10s" help:"Timeout per page render and per download"`
	NoBrowser    bool          `help:"Fetch pages with plain HTTP instead of a headless browser"`
	Disambiguate bool          `help:"Append a short URL hash to filenames to avoid sanitized-name collisions"`
	Verbose      bool          `short:"v" help:"Log each render, locate, and download to stderr"`
	URLsFile     string        `short:"f" help:"File with one page URL per line ('#' starts a comment)"`
	URLs         []string      `arg:"" optional:"" help:"Article or video page URLs to process"`
}

// readURLsFile reads one URL per line, skipping blank lines and comments.
func readURLsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading URLs file: %w", err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading URLs file: %w", err)
	}

	return urls, nil
}
