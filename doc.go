// Package latex2web converts LaTeX documents to self-contained HTML.
//
// # Quick Start
//
// Create a converter and convert a LaTeX file:
//
//	conv, err := latex2web.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, latex2web.Input{Path: "paper.tex"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("paper.html", []byte(result.HTML), 0644)
//
// The result contains the final HTML (result.HTML) and the intermediate
// LaTeXML XML (result.XML) for debugging.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. LaTeX to XML conversion via the latexml CLI (must be on PATH)
//  2. XML parsing into a document tree (beevik/etree)
//  3. Recursive tag-driven rendering of the tree to an HTML body fragment
//  4. Document assembly (title, author, theme CSS, MathJax/Prism references)
//
// If the intermediate XML already exists, RenderXML runs stages 2-4 without
// invoking latexml.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := latex2web.NewConverter(
//	    latex2web.WithTheme("dark"),
//	    latex2web.WithHighlight(latex2web.HighlightServer),
//	    latex2web.WithThemeDir("/path/to/themes"),
//	)
//
// # Themes
//
// Two themes are built in: "clean-serif" (the default) and "dark". Unknown
// theme names fall back silently to the default. A theme directory may
// provide additional themes as {name}.css files; built-in themes remain
// available as fallback.
//
// # Syntax Highlighting
//
// By default code blocks are emitted with language-* classes and the output
// document references Prism for client-side highlighting. With
// HighlightServer, code blocks are rendered to pre-highlighted HTML using
// chroma and the Prism references are omitted.
//
// # LaTeXML Requirement
//
// Conversion from LaTeX source requires the latexml executable. Install with
// "brew install latexml" (mac) or "apt install latexml" (linux). RenderXML
// has no external requirements.
package latex2web
