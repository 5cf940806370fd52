package latex2web

import (
	"fmt"
	"strings"
	"text/template"
)

// pageData feeds the document shell template. Author and Body are
// pre-rendered HTML fragments; Title and CSS are inserted as-is.
type pageData struct {
	Title           string
	CSS             string
	Author          string // empty when the author paragraph is omitted
	Body            string
	ServerHighlight bool // true drops the client-side Prism references
}

// documentShell is the fixed output template. The head inlines the theme CSS
// and configures MathJax delimiters to match the renderer's math output;
// Prism assets are referenced only in client highlight mode.
//
// text/template (not html/template) on purpose: Author and Body are already
// HTML and the title is inserted unescaped, matching the renderer's general
// no-escape policy for document text.
const documentShell = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
{{.CSS}}
    </style>
{{- if not .ServerHighlight}}
    <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/prism/1.29.0/themes/prism-tomorrow.min.css">
{{- end}}
    <script>
        MathJax = {
            tex: {
                inlineMath: [['\\(', '\\)']],
                displayMath: [['\\[', '\\]']]
            }
        };
    </script>
    <script src="https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-mml-chtml.js"></script>
</head>
<body>
    <article>
        <header>
            <h1 class="title">{{.Title}}</h1>
            {{.Author}}
        </header>
        <main>
{{.Body}}
        </main>
    </article>
{{- if not .ServerHighlight}}
    <script src="https://cdnjs.cloudflare.com/ajax/libs/prism/1.29.0/prism.min.js"></script>
    <script src="https://cdnjs.cloudflare.com/ajax/libs/prism/1.29.0/components/prism-python.min.js"></script>
    <script src="https://cdnjs.cloudflare.com/ajax/libs/prism/1.29.0/components/prism-java.min.js"></script>
    <script src="https://cdnjs.cloudflare.com/ajax/libs/prism/1.29.0/components/prism-c.min.js"></script>
    <script src="https://cdnjs.cloudflare.com/ajax/libs/prism/1.29.0/components/prism-cpp.min.js"></script>
    <script src="https://cdnjs.cloudflare.com/ajax/libs/prism/1.29.0/components/prism-javascript.min.js"></script>
    <script src="https://cdnjs.cloudflare.com/ajax/libs/prism/1.29.0/components/prism-bash.min.js"></script>
{{- end}}
</body>
</html>`

// shellTmpl is parsed once at startup. Parse failure is a programmer error.
var shellTmpl = template.Must(template.New("shell").Parse(documentShell))

// fallbackTitle is the page title when the document declares none.
const fallbackTitle = "Untitled"

// authorFragment wraps the author text in its paragraph, or returns the
// empty string when the author is absent or blank. No empty <p> is emitted.
func authorFragment(author string, found bool) string {
	if !found || author == "" {
		return ""
	}
	return `<p class="author">` + author + `</p>`
}

// assembleDocument executes the shell template over the page data.
func assembleDocument(d pageData) (string, error) {
	var sb strings.Builder
	if err := shellTmpl.Execute(&sb, d); err != nil {
		return "", fmt.Errorf("executing document template: %w", err)
	}
	return sb.String(), nil
}
