package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, input string) *Document {
	t.Helper()
	doc, err := Parse([]byte(input))
	require.NoError(t, err)
	return doc
}

func TestClean_StripsComments(t *testing.T) {
	doc := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg"><!-- a --><path d="M0 0"/><!-- b --></svg>`)
	Clean(doc)

	for _, c := range doc.Root.Children {
		_, isComment := c.(Comment)
		assert.False(t, isComment)
	}
	assert.Len(t, doc.Root.ChildElements(), 1)
}

func TestClean_RemovesForeignNamespaceElements(t *testing.T) {
	input := `<svg xmlns="http://www.w3.org/2000/svg" xmlns:sodipodi="http://sodipodi.sf.net/ns">
		<sodipodi:namedview>
			<path d="M0 0h5"/>
		</sodipodi:namedview>
		<path d="M0 0h10"/>
	</svg>`
	doc := mustParse(t, input)
	Clean(doc)

	// The foreign subtree is discarded wholesale: the nested SVG path
	// inside it is never independently reconsidered.
	elems := doc.Root.ChildElements()
	require.Len(t, elems, 1)
	assert.Equal(t, "path", elems[0].Local)
	d, _ := elems[0].Attr("d")
	assert.Equal(t, "M0 0h10", d)
}

func TestClean_ForeignRoot(t *testing.T) {
	doc := mustParse(t, `<html xmlns="http://www.w3.org/1999/xhtml"><body/></html>`)
	Clean(doc)
	assert.Nil(t, doc.Root)
}

func TestClean_RemovesDefs(t *testing.T) {
	input := `<svg xmlns="http://www.w3.org/2000/svg">
		<defs><linearGradient id="grad"/></defs>
		<g><defs/><path d="M0 0h10"/></g>
	</svg>`
	doc := mustParse(t, input)
	Clean(doc)

	doc.Walk(func(el, _ *Element) bool {
		assert.NotEqual(t, "defs", el.Local)
		assert.NotEqual(t, "linearGradient", el.Local)
		return true
	})
}

func TestClean_StripsPrefixedAttributes(t *testing.T) {
	input := `<svg xmlns="http://www.w3.org/2000/svg" xmlns:ink="http://inkscape.org/ns" width="24">
		<g ink:label="Layer 1" fill="none"/>
	</svg>`
	doc := mustParse(t, input)
	Clean(doc)

	doc.Walk(func(el, _ *Element) bool {
		for _, a := range el.Attrs {
			assert.Empty(t, a.Space, "attribute %s:%s survived on <%s>", a.Space, a.Local, el.Local)
			assert.NotEqual(t, "xmlns", a.Local)
		}
		return true
	})

	g := doc.Root.ChildElements()[0]
	fill, ok := g.Attr("fill")
	assert.True(t, ok)
	assert.Equal(t, "none", fill)
}

func TestClean_ReferenceGrid(t *testing.T) {
	tests := []struct {
		name     string
		element  string
		survives bool
	}{
		{"stroke attr gray", `<path stroke="#999999" d="M0 0"/>`, false},
		{"style attr gray", `<path style="stroke:#999999" d="M0 0"/>`, false},
		{"group stroke gray", `<g stroke="#999"><path d="M0 0"/></g>`, false},
		{"group style gray", `<g style="fill:#000;stroke:#999999"><path d="M0 0"/></g>`, false},
		{"different gray", `<path style="stroke:#888888" d="M0 0"/>`, true},
		{"rgb notation not matched", `<path stroke="rgb(153,153,153)" d="M0 0"/>`, true},
		{"black stroke", `<path stroke="#000000" d="M0 0"/>`, true},
		{"rect untouched", `<rect stroke="#999999" width="5" height="5"/>`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg">`+tt.element+`</svg>`)
			Clean(doc)
			if tt.survives {
				assert.NotEmpty(t, doc.Root.ChildElements())
			} else {
				assert.Empty(t, doc.Root.ChildElements())
			}
		})
	}
}

func TestClean_EmptyGroupFixpoint(t *testing.T) {
	// Removing the innermost empty group newly orphans each ancestor in
	// turn; all three levels must disappear.
	input := `<svg xmlns="http://www.w3.org/2000/svg">
		<g id="outer"><g id="middle"><g id="inner"> </g></g></g>
		<path d="M0 0h10"/>
	</svg>`
	doc := mustParse(t, input)
	Clean(doc)

	elems := doc.Root.ChildElements()
	require.Len(t, elems, 1)
	assert.Equal(t, "path", elems[0].Local)
}

func TestClean_GroupWithContentSurvives(t *testing.T) {
	input := `<svg xmlns="http://www.w3.org/2000/svg"><g><path d="M0 0h10"/></g></svg>`
	doc := mustParse(t, input)
	Clean(doc)

	elems := doc.Root.ChildElements()
	require.Len(t, elems, 1)
	assert.Equal(t, "g", elems[0].Local)
}

func TestClean_OrphansCreatedByGridRemoval(t *testing.T) {
	// The group's only child is the reference grid; once that goes, the
	// group itself is an orphan.
	input := `<svg xmlns="http://www.w3.org/2000/svg">
		<g><path stroke="#999999" d="M0 0h1"/></g>
		<path d="M0 0h10"/>
	</svg>`
	doc := mustParse(t, input)
	Clean(doc)

	elems := doc.Root.ChildElements()
	require.Len(t, elems, 1)
	assert.Equal(t, "path", elems[0].Local)
}

func TestClean_Idempotent(t *testing.T) {
	input := `<svg xmlns="http://www.w3.org/2000/svg" xmlns:ink="http://inkscape.org/ns" width="24" height="24">
		<!-- header comment -->
		<defs><linearGradient id="x"/></defs>
		<ink:meta/>
		<g ink:label="grid" stroke="#999999"><path d="M0 0h1"/></g>
		<g><g/></g>
		<g><path d="M2 2h6"/></g>
	</svg>`
	doc := mustParse(t, input)
	Clean(doc)

	first, err := Marshal(doc)
	require.NoError(t, err)

	Clean(doc)
	second, err := Marshal(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
