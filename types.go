package latex2web

import (
	"fmt"
	"time"
)

// Highlight mode constants for verbatim blocks.
const (
	// HighlightClient tags code blocks with language-* classes and lets
	// Prism highlight them in the browser.
	HighlightClient = "client"

	// HighlightServer renders code blocks to pre-highlighted HTML with
	// chroma at conversion time. The output references no Prism assets.
	HighlightServer = "server"
)

// Input contains conversion parameters.
type Input struct {
	Path string // LaTeX source file (required)
}

// Result holds the rendered HTML document and the intermediate LaTeXML XML.
// The XML is kept for debugging; it is the exact text that was parsed and
// rendered.
type Result struct {
	HTML string
	XML  string
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	theme     string
	themeDir  string
	highlight string
	timeout   time.Duration
}

// defaultTimeout is used when no timeout is specified. latexml is slow on
// large documents, so the default is generous.
const defaultTimeout = 2 * time.Minute

// WithTheme sets the theme used for the inlined CSS. Unknown names fall back
// silently to the default theme at render time.
func WithTheme(name string) Option {
	return func(c *Converter) {
		if name != "" {
			c.cfg.theme = name
		}
	}
}

// WithThemeDir sets a directory of {name}.css files that takes precedence
// over the built-in themes. NewConverter fails if the directory is not
// readable.
func WithThemeDir(dir string) Option {
	return func(c *Converter) {
		c.cfg.themeDir = dir
	}
}

// WithHighlight selects the highlight mode for code blocks
// (HighlightClient or HighlightServer).
func WithHighlight(mode string) Option {
	return func(c *Converter) {
		if mode != "" {
			c.cfg.highlight = mode
		}
	}
}

// WithTimeout sets the conversion timeout, covering the latexml subprocess.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("latex2web: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithRunner replaces the command runner used to invoke latexml. Used by
// tests and by callers that need custom subprocess handling.
func WithRunner(r CommandRunner) Option {
	return func(c *Converter) {
		c.latexml = &LaTeXMLConverter{Runner: r}
	}
}

// validateHighlightMode checks that mode is a known highlight mode.
func validateHighlightMode(mode string) error {
	switch mode {
	case HighlightClient, HighlightServer:
		return nil
	}
	return fmt.Errorf("%w: %q (must be %q or %q)", ErrInvalidHighlightMode, mode, HighlightClient, HighlightServer)
}
