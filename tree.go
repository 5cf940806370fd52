package latex2web

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// parseDocument parses LaTeXML's intermediate XML into a document tree.
// The tree is read-only for the rest of the pipeline; nothing mutates it.
func parseDocument(xml string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: no root element", ErrParse)
	}
	return doc, nil
}

// findFirst returns the first element with the given tag in pre-order,
// testing el itself before descending into its children. Returns nil when
// no such element exists.
func findFirst(el *etree.Element, tag string) *etree.Element {
	if el.Tag == tag {
		return el
	}
	for _, child := range el.ChildElements() {
		if found := findFirst(child, tag); found != nil {
			return found
		}
	}
	return nil
}

// extractText returns the flattened text of the first element with the given
// tag. The boolean reports whether such an element exists; an existing but
// empty element yields ("", true).
func extractText(el *etree.Element, tag string) (string, bool) {
	found := findFirst(el, tag)
	if found == nil {
		return "", false
	}
	return flattenText(found), true
}

// flattenText concatenates all character data beneath el in document order,
// discarding structure. No separators are inserted and no escaping is
// applied; escaping is the caller's responsibility.
func flattenText(el *etree.Element) string {
	var sb strings.Builder
	collectText(el, &sb)
	return sb.String()
}

func collectText(el *etree.Element, sb *strings.Builder) {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			collectText(t, sb)
		}
	}
}

// escapeHTML makes raw text safe for literal display in markup. The
// ampersand must be replaced first so already-produced entities are not
// escaped twice.
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}
