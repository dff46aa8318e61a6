package svg

import "strings"

// referenceGridMarker is the substring identifying the gray reference
// grid some authoring tools inject. Matching is literal: other casings
// or gray values are intentionally left alone.
const referenceGridMarker = "#999"

// Clean applies the structural filter to the document in place.
// The steps run in a fixed order; none of them can fail, and a second
// run on the filter's own output is a no-op.
func Clean(doc *Document) {
	stripComments(doc.Root)
	pruneForeign(doc)
	stripPrefixedAttrs(doc)
	dropNamespaceDecls(doc)
	removeDefs(doc)
	removeReferenceGrid(doc)
	pruneEmptyGroups(doc)
}

// stripComments removes every comment node in the subtree.
func stripComments(el *Element) {
	if el == nil {
		return
	}
	kept := el.Children[:0]
	for _, c := range el.Children {
		if _, ok := c.(Comment); ok {
			continue
		}
		kept = append(kept, c)
	}
	el.Children = kept
	for _, c := range el.ChildElements() {
		stripComments(c)
	}
}

// pruneForeign removes, in a single top-down pass, every element whose
// namespace is not the SVG namespace, plus defs elements. A removed
// element's subtree is discarded wholesale; its descendants are never
// reconsidered.
func pruneForeign(doc *Document) {
	doc.Walk(func(el, parent *Element) bool {
		if el.Space == Namespace && el.Local != "defs" {
			return true
		}
		if parent == nil {
			doc.Root = nil
		} else {
			parent.RemoveChild(el)
		}
		return false
	})
}

// stripPrefixedAttrs removes every attribute carrying a namespace
// prefix from the surviving elements, leaving only default-namespace
// attributes.
func stripPrefixedAttrs(doc *Document) {
	doc.Walk(func(el, _ *Element) bool {
		kept := el.Attrs[:0]
		for _, a := range el.Attrs {
			if a.Space != "" {
				continue
			}
			kept = append(kept, a)
		}
		el.Attrs = kept
		return true
	})
}

// dropNamespaceDecls removes namespace declarations left over after
// foreign content was pruned. Pure bookkeeping: the serializer declares
// the SVG namespace on the root itself.
func dropNamespaceDecls(doc *Document) {
	doc.Walk(func(el, _ *Element) bool {
		el.RemoveAttr("xmlns")
		return true
	})
}

// removeDefs sweeps out any defs element remaining anywhere in the
// tree. Mostly redundant with pruneForeign, but re-applied in case a
// namespace variant slipped through the first pass.
func removeDefs(doc *Document) {
	doc.Walk(func(el, parent *Element) bool {
		if el.Local != "defs" {
			return true
		}
		if parent == nil {
			doc.Root = nil
		} else {
			parent.RemoveChild(el)
		}
		return false
	})
}

// removeReferenceGrid removes g and path elements marked with the gray
// reference-grid stroke, either directly or via their style attribute.
func removeReferenceGrid(doc *Document) {
	doc.Walk(func(el, parent *Element) bool {
		if el.Local != "g" && el.Local != "path" {
			return true
		}
		stroke, _ := el.Attr("stroke")
		style, _ := el.Attr("style")
		if !strings.Contains(stroke, referenceGridMarker) && !strings.Contains(style, referenceGridMarker) {
			return true
		}
		if parent == nil {
			doc.Root = nil
		} else {
			parent.RemoveChild(el)
		}
		return false
	})
}

// pruneEmptyGroups removes g elements with no element children,
// repeating until a fixpoint: removing one empty group can newly
// orphan its parent group. Iteration is bounded by the tree depth, so
// termination does not depend on the scan finding fewer candidates.
func pruneEmptyGroups(doc *Document) {
	for i := depth(doc.Root); i > 0; i-- {
		if !removeOrphanPass(doc) {
			return
		}
	}
}

// removeOrphanPass removes every currently-empty g element and reports
// whether anything was removed.
func removeOrphanPass(doc *Document) bool {
	removed := false
	doc.Walk(func(el, parent *Element) bool {
		if el.Local != "g" || len(el.ChildElements()) > 0 {
			return true
		}
		if parent == nil {
			doc.Root = nil
		} else {
			parent.RemoveChild(el)
		}
		removed = true
		return false
	})
	return removed
}

func depth(el *Element) int {
	if el == nil {
		return 0
	}
	max := 0
	for _, c := range el.ChildElements() {
		if d := depth(c); d > max {
			max = d
		}
	}
	return max + 1
}
