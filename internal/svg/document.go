package svg

// Namespace is the SVG XML namespace. Elements outside it do not
// survive cleaning.
const Namespace = "http://www.w3.org/2000/svg"

// Node is one entry in an element's ordered child list.
// Implementations are *Element, Text and Comment.
type Node interface {
	node()
}

// Text is character data between elements.
type Text string

// Comment is an XML comment. Comments carry no structural meaning and
// are dropped during cleaning.
type Comment string

func (*Element) node() {}
func (Text) node()     {}
func (Comment) node()  {}

// Attr is a single attribute. Space holds the resolved namespace URI
// (or the literal "xmlns" for prefixed namespace declarations); it is
// empty for default-namespace attributes.
type Attr struct {
	Space, Local string
	Value        string
}

// Element is a mutable node in the parsed tree. Children are ordered;
// removal is parent-mediated, so Element carries no back-pointer.
type Element struct {
	// Space is the resolved namespace URI of the element.
	Space string

	// Local is the local tag name.
	Local string

	// Attrs is the ordered attribute list.
	Attrs []Attr

	// Children is the ordered child node list.
	Children []Node
}

// Document is a parsed SVG document.
type Document struct {
	Root *Element
}

// Attr returns the value of the default-namespace attribute with the
// given local name.
func (e *Element) Attr(local string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Space == "" && a.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets a default-namespace attribute, replacing any existing
// value while preserving its position.
func (e *Element) SetAttr(local, value string) {
	for i, a := range e.Attrs {
		if a.Space == "" && a.Local == local {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Local: local, Value: value})
}

// RemoveAttr deletes the default-namespace attribute with the given
// local name, if present.
func (e *Element) RemoveAttr(local string) {
	for i, a := range e.Attrs {
		if a.Space == "" && a.Local == local {
			e.Attrs = append(e.Attrs[:i], e.Attrs[i+1:]...)
			return
		}
	}
}

// ChildElements returns the element children in order, skipping text
// and comments.
func (e *Element) ChildElements() []*Element {
	var out []*Element
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// RemoveChild deletes the first occurrence of child from the ordered
// child list. Removal is by identity for elements.
func (e *Element) RemoveChild(child Node) {
	for i, c := range e.Children {
		if c == child {
			e.Children = append(e.Children[:i], e.Children[i+1:]...)
			return
		}
	}
}

// Walk visits every element in document order, root first. The visit
// function receives the element and its parent (nil for the root).
// Returning false skips the element's descendants.
func (d *Document) Walk(visit func(el, parent *Element) bool) {
	if d.Root == nil {
		return
	}
	walk(d.Root, nil, visit)
}

func walk(el, parent *Element, visit func(el, parent *Element) bool) {
	if !visit(el, parent) {
		return
	}
	// Snapshot so visitors may remove the current child.
	children := append([]Node(nil), el.Children...)
	for _, c := range children {
		if child, ok := c.(*Element); ok {
			walk(child, el, visit)
		}
	}
}
