package herofetch

// DefaultExt is the extension used when an image URL carries no
// recognizable image extension.
const DefaultExt = ".jpg"

// DefaultAllowedExts returns the extensions accepted as-is when deriving a
// destination filename from an image URL.
func DefaultAllowedExts() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
}

// Config holds the inputs and output policy for one pipeline run.
type Config struct {
	// URLs is the ordered list of article/video pages to process.
	URLs []string

	// OutputDir is the flat directory downloaded images land in.
	// Created (idempotently) before processing begins.
	OutputDir string

	// DefaultExt replaces unrecognized image extensions.
	// Empty means DefaultExt.
	DefaultExt string

	// AllowedExts lists the extensions kept verbatim.
	// Nil means DefaultAllowedExts.
	AllowedExts []string

	// Disambiguate appends a short hash of the source URL to each
	// filename so distinct URLs with colliding sanitized names don't
	// overwrite each other. Off by default: a later download silently
	// overwrites an earlier file of the same derived name.
	Disambiguate bool
}

// Validate returns an error if the config is unusable.
func (c *Config) Validate() error {
	if len(c.URLs) == 0 {
		return Errorf(EINVALID, "at least one URL required")
	}
	if c.OutputDir == "" {
		return Errorf(EINVALID, "output directory required")
	}
	return nil
}
