// Package herofetch downloads the "hero image" for each article or video
// page in a list of URLs and stores it locally under a sanitized filename.
// The pipeline per URL is: render the page, locate the hero image URL,
// derive a destination filename, download, report.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, http/).
package herofetch
