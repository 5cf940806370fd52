package latex2web

import (
	"context"
	"fmt"

	"github.com/alnah/go-latex2web/internal/assets"
)

// Compile-time interface implementation checks.
var (
	_ CommandRunner = (*ExecRunner)(nil)
	_ themeLoader   = (*assets.EmbeddedLoader)(nil)
	_ themeLoader   = (*assets.DirLoader)(nil)
)

// Converter orchestrates the LaTeX-to-HTML pipeline: latexml invocation,
// XML parsing, tree rendering, and document assembly.
// Create with NewConverter and use Convert or RenderXML.
type Converter struct {
	cfg      converterConfig
	latexml  *LaTeXMLConverter
	themes   themeLoader
	renderer *renderer
}

// NewConverter creates a Converter with default configuration. Use options
// to customize behavior (e.g. WithTheme, WithHighlight, WithThemeDir).
// Returns an error for an unknown highlight mode or an unreadable theme
// directory.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			theme:     DefaultTheme,
			highlight: HighlightClient,
			timeout:   defaultTimeout,
		},
		latexml: NewLaTeXMLConverter(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := validateHighlightMode(c.cfg.highlight); err != nil {
		return nil, err
	}

	if c.themes == nil {
		if c.cfg.themeDir != "" {
			loader, err := assets.NewDirLoader(c.cfg.themeDir)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidThemeDir, err)
			}
			c.themes = loader
		} else {
			c.themes = assets.NewEmbeddedLoader()
		}
	}

	c.renderer = &renderer{}
	if c.cfg.highlight == HighlightServer {
		c.renderer.highlighter = newCodeHighlighter(defaultChromaStyle)
	}

	return c, nil
}

// Convert runs latexml on input.Path and renders the resulting XML to a
// complete HTML document. The context bounds the whole run together with
// the configured timeout.
func (c *Converter) Convert(ctx context.Context, input Input) (*Result, error) {
	if input.Path == "" {
		return nil, ErrEmptyInput
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	if err := c.latexml.CheckInstalled(ctx); err != nil {
		return nil, err
	}

	xml, err := c.latexml.ToXML(ctx, input.Path)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	html, err := c.RenderXML(xml)
	if err != nil {
		return nil, err
	}

	return &Result{HTML: html, XML: xml}, nil
}

// RenderXML renders already-converted LaTeXML XML to a complete HTML
// document. This is the pure core: no subprocess, no file I/O, no mutation
// of the parsed tree. Malformed XML returns an error wrapping ErrParse.
func (c *Converter) RenderXML(xml string) (string, error) {
	doc, err := parseDocument(xml)
	if err != nil {
		return "", err
	}
	root := doc.Root()

	title, ok := extractText(root, "title")
	if !ok {
		title = fallbackTitle
	}
	author, authorFound := extractText(root, "creator")

	// Render the document body subtree, or the whole tree if no document
	// marker exists.
	body := root
	if docEl := findFirst(root, documentTag); docEl != nil {
		body = docEl
	}
	bodyHTML := c.renderer.renderBody(body)

	css, err := resolveTheme(c.themes, c.cfg.theme)
	if err != nil {
		return "", fmt.Errorf("loading theme: %w", err)
	}

	return assembleDocument(pageData{
		Title:           title,
		CSS:             css,
		Author:          authorFragment(author, authorFound),
		Body:            bodyHTML,
		ServerHighlight: c.renderer.highlighter != nil,
	})
}
