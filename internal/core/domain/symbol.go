package domain

import (
	"fmt"
	"regexp"
)

// objectNamePattern matches the ObjectName of an ISO 7000 icon page,
// e.g. "ISO 7000 - Ref-No 0098" or "ISO 7000 - Ref-No 1701A".
// The captured group is the reference id.
var objectNamePattern = regexp.MustCompile(`^ISO 7000 - Ref-No ([0-9]+[A-Za-z]?)$`)

// SymbolRecord is the metadata for a single ISO 7000 icon.
// Records are immutable once constructed; they are built from a parsed
// metadata page and held for the lifetime of a pipeline run.
type SymbolRecord struct {
	// Ref is the reference id, the unique key for the icon
	// (e.g. "0434" or "1701A").
	Ref string

	// Title is the Wikimedia file page title.
	Title string

	// User is the uploading user, for attribution.
	User string

	// UserID is the uploading user's numeric id.
	UserID int64

	// URL is the direct URL of the raw SVG file.
	URL string

	// LicenseName is the short license name (e.g. "CC BY-SA 4.0").
	LicenseName string

	// LicenseURL is the license deed URL. May be empty.
	LicenseURL string

	// Description is the file description, HTML as supplied upstream.
	Description string

	// DescriptionURL is the file description page URL.
	DescriptionURL string
}

// NewSymbolRecord constructs a validated SymbolRecord.
// The reference id must be non-empty.
func NewSymbolRecord(ref string, rec SymbolRecord) (SymbolRecord, error) {
	if ref == "" {
		return SymbolRecord{}, fmt.Errorf("%w: empty reference id", ErrInvalidInput)
	}
	rec.Ref = ref
	return rec, nil
}

// Equal reports whether two records match in every field.
func (r SymbolRecord) Equal(other SymbolRecord) bool {
	return r == other
}

// Filename returns the artifact filename for this record's icon.
func (r SymbolRecord) Filename() string {
	return r.Ref + ".svg"
}

// ParseReferenceID extracts the reference id from an ObjectName.
// Returns the id and true on a match, or "" and false for names which
// do not identify an ISO 7000 icon.
func ParseReferenceID(objectName string) (string, bool) {
	m := objectNamePattern.FindStringSubmatch(objectName)
	if m == nil {
		return "", false
	}
	return m[1], true
}
