package latex2web

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// tagKind is a closed enumeration of the tags the renderer recognizes.
// Dispatch is an exhaustive switch over the kind; anything the upstream
// converter emits that is not listed here lands on tagOther and renders
// transparently.
type tagKind int

const (
	tagOther tagKind = iota
	tagSection
	tagTitle
	tagPara
	tagEmph
	tagText
	tagItemize
	tagEnumerate
	tagTable
	tagFigure
	tagVerbatim
	tagMath
	tagCreator
	tagDropped
)

// classifyTag maps a LaTeXML tag identifier to its kind.
func classifyTag(name string) tagKind {
	switch name {
	case sectionTag:
		return tagSection
	case "title":
		return tagTitle
	case "para", "p":
		return tagPara
	case "emph", "em":
		return tagEmph
	case "text":
		return tagText
	case "itemize":
		return tagItemize
	case "enumerate":
		return tagEnumerate
	case "tabular", "table":
		return tagTable
	case "graphics", "figure":
		return tagFigure
	case "verbatim", "lstlisting":
		return tagVerbatim
	case "Math", "math":
		return tagMath
	case "creator":
		return tagCreator
	case "tags", "tag", "ref", "bibref":
		// LaTeXML metadata and cross-reference carriers; they hold no
		// renderable content and are skipped entirely.
		return tagDropped
	default:
		return tagOther
	}
}

// maxHeadingLevel caps derived heading levels at h6, the HTML limit.
const maxHeadingLevel = 6

// documentTag is the root sentinel emitted by LaTeXML. A title that is a
// direct child of it is the page title and must not repeat in the body.
const documentTag = "document"

// sectionTag is the sectioning tag; each sectioning ancestor pushes nested
// titles one heading level deeper.
const sectionTag = "section"

// renderState is the context threaded through the recursion. Section depth
// is an accumulator incremented on entering a section element, so heading
// levels derive from nesting without walking parent chains.
type renderState struct {
	sectionDepth   int
	inDocumentRoot bool // the parent element is the document root
}

// childState derives the state for el's children.
func childState(el *etree.Element, st renderState, kind tagKind) renderState {
	next := renderState{
		sectionDepth:   st.sectionDepth,
		inDocumentRoot: el.Tag == documentTag,
	}
	if kind == tagSection {
		next.sectionDepth++
	}
	return next
}

// renderer turns a document subtree into an HTML body fragment. It never
// mutates the tree; two renderers may walk the same tree concurrently.
type renderer struct {
	highlighter *codeHighlighter // nil means client-side language-* classes
}

// renderBody renders the chosen root subtree to an HTML fragment.
func (r *renderer) renderBody(el *etree.Element) string {
	return r.renderElement(el, renderState{})
}

// renderChildren renders el's child tokens in document order and
// concatenates the fragments bottom-up.
func (r *renderer) renderChildren(el *etree.Element, st renderState) string {
	var sb strings.Builder
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			sb.WriteString(renderText(t.Data))
		case *etree.Element:
			sb.WriteString(r.renderElement(t, st))
		}
	}
	return sb.String()
}

// renderText emits trimmed character data followed by one separating space,
// so sibling inline spans do not concatenate into a single word.
// Whitespace-only nodes are dropped. This normalizes whitespace rather than
// round-tripping it.
func renderText(data string) string {
	trimmed := strings.TrimSpace(data)
	if trimmed == "" {
		return ""
	}
	return trimmed + " "
}

func (r *renderer) renderElement(el *etree.Element, st renderState) string {
	kind := classifyTag(el.Tag)
	next := childState(el, st, kind)

	switch kind {
	case tagDropped:
		return ""
	case tagCreator:
		// Surfaced separately as the author in the page header.
		return ""
	case tagSection:
		return "<section>" + r.renderChildren(el, next) + "</section>"
	case tagTitle:
		return r.renderTitle(el, st, next)
	case tagPara:
		return "<p>" + r.renderChildren(el, next) + "</p>"
	case tagEmph:
		return "<em>" + r.renderChildren(el, next) + "</em>"
	case tagText:
		return r.renderTextSpan(el, next)
	case tagItemize:
		return "<ul>" + r.renderItems(el, next) + "</ul>"
	case tagEnumerate:
		return "<ol>" + r.renderItems(el, next) + "</ol>"
	case tagTable:
		return r.renderTable(el, next)
	case tagFigure:
		return r.renderFigure(el, next)
	case tagVerbatim:
		return r.renderCode(el)
	case tagMath:
		return renderMath(el)
	case tagOther:
		// Transparent: the unknown wrapper contributes nothing itself.
		return r.renderChildren(el, next)
	}
	return ""
}

// renderTitle emits a heading whose level follows the section nesting depth.
// The document title is skipped; it already appears in the page header.
func (r *renderer) renderTitle(el *etree.Element, st, next renderState) string {
	if st.inDocumentRoot {
		return ""
	}
	level := st.sectionDepth + 1
	if level > maxHeadingLevel {
		level = maxHeadingLevel
	}
	h := fmt.Sprintf("h%d", level)
	return "<" + h + ">" + r.renderChildren(el, next) + "</" + h + ">"
}

// renderTextSpan dispatches on the font attribute: bold and typewriter get
// inline wrappers, anything else renders transparently.
func (r *renderer) renderTextSpan(el *etree.Element, next renderState) string {
	switch el.SelectAttrValue("font", "") {
	case "bold":
		return "<strong>" + r.renderChildren(el, next) + "</strong>"
	case "typewriter":
		return "<code>" + r.renderChildren(el, next) + "</code>"
	default:
		return r.renderChildren(el, next)
	}
}

// renderItems renders direct item children as list entries. Anything else
// directly inside a list is ignored.
func (r *renderer) renderItems(list *etree.Element, st renderState) string {
	var sb strings.Builder
	for _, child := range list.ChildElements() {
		if child.Tag != "item" {
			continue
		}
		sb.WriteString("<li>")
		sb.WriteString(r.renderChildren(child, st))
		sb.WriteString("</li>")
	}
	return sb.String()
}

// renderTable emits a wrapped table. Only direct tr children become rows and
// only td/th children of a row become cells; everything else is ignored.
func (r *renderer) renderTable(el *etree.Element, st renderState) string {
	var sb strings.Builder
	sb.WriteString(`<div class="table-wrapper"><table>`)
	for _, row := range el.ChildElements() {
		if row.Tag != "tr" {
			continue
		}
		sb.WriteString("<tr>")
		for _, cell := range row.ChildElements() {
			switch cell.Tag {
			case "td":
				sb.WriteString("<td>" + r.renderChildren(cell, st) + "</td>")
			case "th":
				sb.WriteString("<th>" + r.renderChildren(cell, st) + "</th>")
			}
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</table></div>")
	return sb.String()
}

// renderFigure emits a figure with an image when the graphic attribute is
// present. The first descendant caption provides the alt text and, when
// non-empty, a figcaption. Without a graphic attribute the element renders
// transparently.
func (r *renderer) renderFigure(el *etree.Element, st renderState) string {
	attr := el.SelectAttr("graphic")
	if attr == nil {
		return r.renderChildren(el, st)
	}

	var caption string
	if cap := findFirst(el, "caption"); cap != nil {
		caption = flattenText(cap)
	}

	var sb strings.Builder
	sb.WriteString("<figure>")
	sb.WriteString(`<img src="` + attr.Value + `" alt="` + caption + `">`)
	if caption != "" {
		sb.WriteString("<figcaption>" + caption + "</figcaption>")
	}
	sb.WriteString("</figure>")
	return sb.String()
}

// renderCode emits a verbatim block from the flattened descendant text,
// ignoring structure. Client mode escapes the text and tags it with a
// language-* class for Prism; server mode hands it to chroma instead.
func (r *renderer) renderCode(el *etree.Element) string {
	code := flattenText(el)
	lang := el.SelectAttrValue("language", "")
	if r.highlighter != nil {
		return r.highlighter.Render(code, lang)
	}
	return plainCodeBlock(code, lang)
}

// renderMath emits MathJax delimiters around the flattened payload. The
// payload is deliberately NOT escaped: MathJax consumes the literal TeX and
// entities would corrupt it.
func renderMath(el *etree.Element) string {
	content := flattenText(el)
	if el.SelectAttrValue("mode", "") == "display" {
		return `<div class="math-display">\[` + content + `\]</div>`
	}
	return `\(` + content + `\)`
}
