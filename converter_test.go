package latex2web

// Notes:
// - Convert is exercised with fakeRunner (latexml_test.go); no real latexml
//   is needed anywhere in this suite.
// - RenderXML covers the pure core end to end: parse, metadata, body,
//   theme, assembly.

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const sampleXML = `<document><title>Hi</title><creator>A. Writer</creator>` +
	`<para><text>Hello </text><text font="bold">world</text></para></document>`

// ---------------------------------------------------------------------------
// TestNewConverter - Configuration Validation
// ---------------------------------------------------------------------------

func TestNewConverter(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		conv, err := NewConverter()
		if err != nil {
			t.Fatalf("NewConverter: %v", err)
		}
		if conv.cfg.theme != DefaultTheme {
			t.Errorf("theme = %q, want %q", conv.cfg.theme, DefaultTheme)
		}
		if conv.cfg.highlight != HighlightClient {
			t.Errorf("highlight = %q, want %q", conv.cfg.highlight, HighlightClient)
		}
		if conv.renderer.highlighter != nil {
			t.Error("client mode must not create a server-side highlighter")
		}
	})

	t.Run("invalid highlight mode", func(t *testing.T) {
		t.Parallel()

		_, err := NewConverter(WithHighlight("fancy"))
		if !errors.Is(err, ErrInvalidHighlightMode) {
			t.Errorf("error = %v, want ErrInvalidHighlightMode", err)
		}
	})

	t.Run("invalid theme dir", func(t *testing.T) {
		t.Parallel()

		_, err := NewConverter(WithThemeDir("/does/not/exist"))
		if !errors.Is(err, ErrInvalidThemeDir) {
			t.Errorf("error = %v, want ErrInvalidThemeDir", err)
		}
	})

	t.Run("server highlight creates a highlighter", func(t *testing.T) {
		t.Parallel()

		conv, err := NewConverter(WithHighlight(HighlightServer))
		if err != nil {
			t.Fatalf("NewConverter: %v", err)
		}
		if conv.renderer.highlighter == nil {
			t.Error("server mode did not create a highlighter")
		}
	})
}

func TestWithTimeoutPanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithTimeout(0) did not panic")
		}
	}()
	WithTimeout(0)
}

// ---------------------------------------------------------------------------
// TestConvert - Full Pipeline With Fake latexml
// ---------------------------------------------------------------------------

func TestConvert(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		runner := &fakeRunner{xml: sampleXML}
		conv, err := NewConverter(WithRunner(runner))
		if err != nil {
			t.Fatalf("NewConverter: %v", err)
		}

		result, err := conv.Convert(context.Background(), Input{Path: "paper.tex"})
		if err != nil {
			t.Fatalf("Convert: %v", err)
		}

		if result.XML != sampleXML {
			t.Error("intermediate XML not preserved in the result")
		}
		if !strings.Contains(result.HTML, `<h1 class="title">Hi</h1>`) {
			t.Error("page heading missing from output")
		}
		if !strings.Contains(result.HTML, `<p class="author">A. Writer</p>`) {
			t.Error("author paragraph missing from output")
		}
		if !strings.Contains(result.HTML, "<p>Hello <strong>world </strong></p>") {
			t.Error("body fragment missing from output")
		}

		// Probe first, then conversion.
		if len(runner.calls) != 2 {
			t.Fatalf("runner called %d times, want 2", len(runner.calls))
		}
		if runner.calls[0][1] != "--version" {
			t.Errorf("first call = %v, want the --version probe", runner.calls[0])
		}
		if runner.calls[1][1] != "paper.tex" {
			t.Errorf("second call = %v, want the input path", runner.calls[1])
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		conv, err := NewConverter(WithRunner(&fakeRunner{}))
		if err != nil {
			t.Fatalf("NewConverter: %v", err)
		}
		_, err = conv.Convert(context.Background(), Input{})
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("error = %v, want ErrEmptyInput", err)
		}
	})

	t.Run("latexml missing", func(t *testing.T) {
		t.Parallel()

		runner := &fakeRunner{versionErr: errors.New("not found")}
		conv, err := NewConverter(WithRunner(runner))
		if err != nil {
			t.Fatalf("NewConverter: %v", err)
		}
		_, err = conv.Convert(context.Background(), Input{Path: "paper.tex"})
		if !errors.Is(err, ErrLaTeXMLNotFound) {
			t.Errorf("error = %v, want ErrLaTeXMLNotFound", err)
		}
	})

	t.Run("latexml failure", func(t *testing.T) {
		t.Parallel()

		runner := &fakeRunner{stderr: "boom", convertErr: errors.New("exit status 1")}
		conv, err := NewConverter(WithRunner(runner))
		if err != nil {
			t.Fatalf("NewConverter: %v", err)
		}
		_, err = conv.Convert(context.Background(), Input{Path: "paper.tex"})
		if !errors.Is(err, ErrLaTeXMLFailed) {
			t.Errorf("error = %v, want ErrLaTeXMLFailed", err)
		}
	})

	t.Run("malformed latexml output", func(t *testing.T) {
		t.Parallel()

		runner := &fakeRunner{xml: "<document><broken"}
		conv, err := NewConverter(WithRunner(runner))
		if err != nil {
			t.Fatalf("NewConverter: %v", err)
		}
		_, err = conv.Convert(context.Background(), Input{Path: "paper.tex"})
		if !errors.Is(err, ErrParse) {
			t.Errorf("error = %v, want ErrParse", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRenderXML - Pure Core
// ---------------------------------------------------------------------------

func TestRenderXML(t *testing.T) {
	t.Parallel()

	newTestConverter := func(t *testing.T, opts ...Option) *Converter {
		t.Helper()
		conv, err := NewConverter(opts...)
		if err != nil {
			t.Fatalf("NewConverter: %v", err)
		}
		return conv
	}

	t.Run("missing title falls back to Untitled", func(t *testing.T) {
		t.Parallel()

		html, err := newTestConverter(t).RenderXML("<document><para><text>x</text></para></document>")
		if err != nil {
			t.Fatalf("RenderXML: %v", err)
		}
		if !strings.Contains(html, "<title>Untitled</title>") {
			t.Error("missing title did not fall back to Untitled")
		}
	})

	t.Run("author omission", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name       string
			xml        string
			wantAuthor bool
		}{
			{
				name:       "present author",
				xml:        "<document><creator>A. Writer</creator></document>",
				wantAuthor: true,
			},
			{
				name:       "empty author",
				xml:        "<document><creator></creator></document>",
				wantAuthor: false,
			},
			{
				name:       "absent author",
				xml:        "<document></document>",
				wantAuthor: false,
			},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				html, err := newTestConverter(t).RenderXML(tt.xml)
				if err != nil {
					t.Fatalf("RenderXML: %v", err)
				}
				got := strings.Count(html, `<p class="author">`)
				want := 0
				if tt.wantAuthor {
					want = 1
				}
				if got != want {
					t.Errorf("author paragraph count = %d, want %d", got, want)
				}
			})
		}
	})

	t.Run("body subtree is the document element", func(t *testing.T) {
		t.Parallel()

		// Content outside the document element must not render.
		xml := "<root><preamble><para><text>skip</text></para></preamble>" +
			"<document><para><text>keep</text></para></document></root>"
		html, err := newTestConverter(t).RenderXML(xml)
		if err != nil {
			t.Fatalf("RenderXML: %v", err)
		}
		if strings.Contains(html, "skip") {
			t.Error("content outside the document element was rendered")
		}
		if !strings.Contains(html, "<p>keep </p>") {
			t.Error("document content missing from output")
		}
	})

	t.Run("whole tree renders when no document element exists", func(t *testing.T) {
		t.Parallel()

		html, err := newTestConverter(t).RenderXML("<root><para><text>x</text></para></root>")
		if err != nil {
			t.Fatalf("RenderXML: %v", err)
		}
		if !strings.Contains(html, "<p>x </p>") {
			t.Error("body missing when no document element exists")
		}
	})

	t.Run("verbatim end to end", func(t *testing.T) {
		t.Parallel()

		html, err := newTestConverter(t).RenderXML(
			`<document><verbatim language="py">a&lt;b</verbatim></document>`)
		if err != nil {
			t.Fatalf("RenderXML: %v", err)
		}
		if !strings.Contains(html, `<pre><code class="language-py">a&lt;b</code></pre>`) {
			t.Error("escaped code block missing from output")
		}
	})

	t.Run("figure end to end", func(t *testing.T) {
		t.Parallel()

		html, err := newTestConverter(t).RenderXML(
			`<document><graphics graphic="x.png"><caption>Fig 1</caption></graphics></document>`)
		if err != nil {
			t.Fatalf("RenderXML: %v", err)
		}
		want := `<figure><img src="x.png" alt="Fig 1"><figcaption>Fig 1</figcaption></figure>`
		if !strings.Contains(html, want) {
			t.Error("figure markup missing from output")
		}
	})

	t.Run("server highlight renders chroma and drops Prism", func(t *testing.T) {
		t.Parallel()

		conv := newTestConverter(t, WithHighlight(HighlightServer))
		html, err := conv.RenderXML(`<document><verbatim language="py">a&lt;b</verbatim></document>`)
		if err != nil {
			t.Fatalf("RenderXML: %v", err)
		}
		if !strings.Contains(html, `<pre class="chroma">`) {
			t.Error("chroma block missing from server highlight output")
		}
		if !strings.Contains(html, "&lt;") {
			t.Error("code not escaped in server highlight output")
		}
		if strings.Contains(html, "prism") {
			t.Error("Prism assets referenced despite server highlighting")
		}
	})

	t.Run("dark theme CSS is inlined", func(t *testing.T) {
		t.Parallel()

		defHTML, err := newTestConverter(t).RenderXML("<document/>")
		if err != nil {
			t.Fatalf("RenderXML: %v", err)
		}
		darkHTML, err := newTestConverter(t, WithTheme(DarkTheme)).RenderXML("<document/>")
		if err != nil {
			t.Fatalf("RenderXML: %v", err)
		}
		if defHTML == darkHTML {
			t.Error("dark theme output equals default theme output")
		}

		unknownHTML, err := newTestConverter(t, WithTheme("anything-else")).RenderXML("<document/>")
		if err != nil {
			t.Fatalf("RenderXML: %v", err)
		}
		if unknownHTML != defHTML {
			t.Error("unknown theme output differs from default theme output")
		}
	})
}

// ---------------------------------------------------------------------------
// TestConvertConcurrent - No Shared Mutable State
// ---------------------------------------------------------------------------

func TestRenderXMLConcurrent(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}

	first, err := conv.RenderXML(sampleXML)
	if err != nil {
		t.Fatalf("RenderXML: %v", err)
	}

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			html, err := conv.RenderXML(sampleXML)
			if err == nil && html != first {
				err = errors.New("concurrent render diverged")
			}
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Error(err)
		}
	}
}
