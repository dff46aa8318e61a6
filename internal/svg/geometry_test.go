package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gauravmm/typst-iso-7000/internal/core/domain"
)

func attr(t *testing.T, el *Element, name string) string {
	t.Helper()
	v, ok := el.Attr(name)
	require.True(t, ok, "attribute %q missing", name)
	return v
}

func TestNormalize_NeitherSizeNorViewBox(t *testing.T) {
	doc := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg"><path d="M0 0h10"/></svg>`)
	err := Normalize(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingGeometry)
}

func TestNormalize_ViewBoxOnly(t *testing.T) {
	doc := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 48 48"/>`)
	require.NoError(t, Normalize(doc))

	assert.Equal(t, "10mm", attr(t, doc.Root, "width"))
	assert.Equal(t, "10mm", attr(t, doc.Root, "height"))
	// Pre-existing viewBox is preserved unchanged.
	assert.Equal(t, "0 0 48 48", attr(t, doc.Root, "viewBox"))
}

func TestNormalize_SizeOnly(t *testing.T) {
	doc := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24"/>`)
	require.NoError(t, Normalize(doc))

	assert.Equal(t, "0 0 24 24", attr(t, doc.Root, "viewBox"))
	assert.Equal(t, "10mm", attr(t, doc.Root, "width"))
	assert.Equal(t, "10mm", attr(t, doc.Root, "height"))
}

func TestNormalize_SizeWithUnits(t *testing.T) {
	tests := []struct {
		name          string
		width, height string
		wantViewBox   string
	}{
		{"px", "24px", "24px", "0 0 24 24"},
		{"mm", "10.5mm", "20mm", "0 0 10.5 20"},
		{"pt", "12pt", "12pt", "0 0 12 12"},
		{"percent", "100%", "50%", "0 0 100 50"},
		{"whitespace", " 24 ", "24", "0 0 24 24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg" width="`+tt.width+`" height="`+tt.height+`"/>`)
			require.NoError(t, Normalize(doc))
			assert.Equal(t, tt.wantViewBox, attr(t, doc.Root, "viewBox"))
		})
	}
}

func TestNormalize_UnparsableSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height string
	}{
		{"word", "auto", "auto"},
		{"empty", "", ""},
		{"garbage width", "abc", "24"},
		{"garbage height", "24", "12,5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg" width="`+tt.width+`" height="`+tt.height+`"/>`)
			err := Normalize(doc)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUnparsableGeometry)
		})
	}
}

func TestNormalize_BothPresent(t *testing.T) {
	doc := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg" width="48mm" height="48mm" viewBox="0 0 24 24"/>`)
	require.NoError(t, Normalize(doc))

	// viewBox is kept verbatim, size is overwritten regardless of the
	// original physical dimensions.
	assert.Equal(t, "0 0 24 24", attr(t, doc.Root, "viewBox"))
	assert.Equal(t, "10mm", attr(t, doc.Root, "width"))
	assert.Equal(t, "10mm", attr(t, doc.Root, "height"))
}

func TestNormalize_PartialSizeWithoutViewBox(t *testing.T) {
	// Only one of width/height present counts as no usable size.
	doc := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg" width="24"/>`)
	err := Normalize(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingGeometry)
}

func TestNormalize_PartialSizeWithViewBox(t *testing.T) {
	doc := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg" width="24" viewBox="0 0 24 24"/>`)
	require.NoError(t, Normalize(doc))
	assert.Equal(t, "0 0 24 24", attr(t, doc.Root, "viewBox"))
	assert.Equal(t, "10mm", attr(t, doc.Root, "width"))
	assert.Equal(t, "10mm", attr(t, doc.Root, "height"))
}

func TestNormalize_EmptyDocument(t *testing.T) {
	doc := &Document{}
	err := Normalize(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingGeometry)
}

func TestNormalizeSize_CustomSize(t *testing.T) {
	doc := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"/>`)
	require.NoError(t, NormalizeSize(doc, "25mm"))
	assert.Equal(t, "25mm", attr(t, doc.Root, "width"))
	assert.Equal(t, "25mm", attr(t, doc.Root, "height"))
}
