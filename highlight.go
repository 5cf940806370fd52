package latex2web

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	hlhtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// defaultChromaStyle is the chroma color style for server-side highlighting.
const defaultChromaStyle = "github"

// codeHighlighter renders code blocks to pre-highlighted HTML with chroma,
// removing the need for client-side Prism assets.
type codeHighlighter struct {
	style *chroma.Style
}

// newCodeHighlighter creates a highlighter using the named chroma style,
// falling back to the chroma fallback style for unknown names.
func newCodeHighlighter(styleName string) *codeHighlighter {
	s := styles.Get(styleName)
	if s == nil {
		s = styles.Fallback
	}
	return &codeHighlighter{style: s}
}

// Render tokenizes src with the lexer registered for lang, guessing by
// content when lang is empty or unknown, and formats the tokens as
// inline-styled HTML inside a pre/code pair. On tokenization or formatting
// failure it falls back to the escaped client-side form, so code is never
// lost.
func (h *codeHighlighter) Render(src, lang string) string {
	l := lexers.Get(strings.TrimSpace(lang))
	if l == nil {
		l = lexers.Analyse(src)
	}
	if l == nil {
		l = lexers.Fallback
	}
	l = chroma.Coalesce(l)

	it, err := l.Tokenise(nil, src)
	if err != nil {
		return plainCodeBlock(src, lang)
	}

	f := hlhtml.New(hlhtml.Standalone(false), hlhtml.PreventSurroundingPre(true))

	var sb strings.Builder
	sb.WriteString(`<pre class="chroma"><code>`)
	if err := f.Format(&sb, h.style, it); err != nil {
		return plainCodeBlock(src, lang)
	}
	sb.WriteString("</code></pre>")
	return sb.String()
}

// plainCodeBlock is the unhighlighted form shared with client mode.
func plainCodeBlock(src, lang string) string {
	return `<pre><code class="language-` + lang + `">` + escapeHTML(src) + `</code></pre>`
}
