package svg

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gauravmm/typst-iso-7000/internal/core/domain"
)

const (
	xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
	indent    = "  "
)

// Marshal emits the document as pretty-printed UTF-8 XML with an
// explicit declaration. No transformation happens here: the same tree
// always yields byte-identical output, which is what the driver's
// idempotence check relies on.
func Marshal(doc *Document) ([]byte, error) {
	if doc.Root == nil {
		return nil, fmt.Errorf("%w: document has no root element", domain.ErrInvalidInput)
	}

	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	writeElement(&buf, doc.Root, 0, true)
	return buf.Bytes(), nil
}

func writeElement(buf *bytes.Buffer, el *Element, depth int, isRoot bool) {
	pad := strings.Repeat(indent, depth)

	buf.WriteString(pad)
	buf.WriteByte('<')
	buf.WriteString(el.Local)
	if isRoot {
		buf.WriteString(` xmlns="` + Namespace + `"`)
	}
	for _, a := range el.Attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.Local)
		buf.WriteString(`="`)
		buf.WriteString(escape(a.Value, true))
		buf.WriteByte('"')
	}

	text, elems := significantChildren(el)
	switch {
	case len(elems) == 0 && text == "":
		buf.WriteString("/>\n")

	case len(elems) == 0:
		// Text-only content (title, desc) stays on one line.
		buf.WriteByte('>')
		buf.WriteString(escape(text, false))
		buf.WriteString("</" + el.Local + ">\n")

	default:
		buf.WriteString(">\n")
		if text != "" {
			buf.WriteString(pad + indent)
			buf.WriteString(escape(text, false))
			buf.WriteByte('\n')
		}
		for _, c := range elems {
			writeElement(buf, c, depth+1, false)
		}
		buf.WriteString(pad)
		buf.WriteString("</" + el.Local + ">\n")
	}
}

// significantChildren splits an element's children into trimmed text
// content and child elements. Whitespace-only text is layout noise from
// the source document and is dropped in favour of our own indentation.
func significantChildren(el *Element) (string, []*Element) {
	var parts []string
	var elems []*Element
	for _, c := range el.Children {
		switch n := c.(type) {
		case Text:
			if t := strings.TrimSpace(string(n)); t != "" {
				parts = append(parts, t)
			}
		case *Element:
			elems = append(elems, n)
		}
	}
	return strings.Join(parts, " "), elems
}

var (
	attrEscaper = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "\n", "&#10;", "\t", "&#9;",
	)
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
)

func escape(s string, attr bool) string {
	if attr {
		return attrEscaper.Replace(s)
	}
	return textEscaper.Replace(s)
}
