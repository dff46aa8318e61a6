package svg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gauravmm/typst-iso-7000/internal/core/domain"
)

// DefaultCanonicalSize is the physical footprint every processed icon
// receives, chosen for this icon family.
const DefaultCanonicalSize = "10mm"

// unitCutset covers the unit suffixes found on width/height values
// (px, mm, cm, in, pt, pc, em, ex, %).
const unitCutset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ% "

// Normalize is NormalizeSize with the default canonical size.
func Normalize(doc *Document) error {
	return NormalizeSize(doc, DefaultCanonicalSize)
}

// NormalizeSize reconciles the root's declared size and viewBox into a
// single canonical physical size. The decision is a four-way match on
// (size present, viewBox present):
//
//   - neither:  fails with domain.ErrMissingGeometry
//   - viewBox only:  viewBox kept, size synthesized
//   - size only:  viewBox synthesized from the numeric size, or
//     domain.ErrUnparsableGeometry when the values do not parse
//   - both:  viewBox kept verbatim
//
// In every non-failing case the root's width and height end up set to
// the canonical size; the icon's internal coordinate system survives
// through the viewBox.
func NormalizeSize(doc *Document, size string) error {
	root := doc.Root
	if root == nil {
		return fmt.Errorf("%w: document has no root element", domain.ErrMissingGeometry)
	}

	width, hasWidth := root.Attr("width")
	height, hasHeight := root.Attr("height")
	_, hasViewBox := root.Attr("viewBox")
	hasSize := hasWidth && hasHeight

	switch {
	case !hasSize && !hasViewBox:
		return fmt.Errorf("%w: root has neither size nor viewBox", domain.ErrMissingGeometry)

	case !hasSize && hasViewBox:
		// Size synthesized below; the pre-existing viewBox is kept.

	case hasSize && !hasViewBox:
		w, errW := parseLength(width)
		h, errH := parseLength(height)
		if errW != nil || errH != nil {
			return fmt.Errorf("%w: width=%q height=%q", domain.ErrUnparsableGeometry, width, height)
		}
		root.SetAttr("viewBox", fmt.Sprintf("0 0 %s %s", formatLength(w), formatLength(h)))

	case hasSize && hasViewBox:
		// viewBox kept verbatim; proceed to the size overwrite.
	}

	root.SetAttr("width", size)
	root.SetAttr("height", size)
	return nil
}

// parseLength parses a length value after stripping its unit suffix.
func parseLength(v string) (float64, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(v), unitCutset)
	return strconv.ParseFloat(trimmed, 64)
}

func formatLength(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
