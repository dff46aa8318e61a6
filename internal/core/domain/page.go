package domain

// SVGMIMEType is the MIME type of pages that yield symbol records.
const SVGMIMEType = "image/svg+xml"

// PageRecord is a flattened Wikimedia imageinfo page as consumed from
// the metadata-retrieval collaborator. Only pages whose MIME type is
// image/svg+xml and whose ObjectName matches the ISO 7000 pattern
// produce a SymbolRecord; the rest are skipped.
type PageRecord struct {
	// Title is the file page title (e.g. "File:ISO 7000 - Ref-No 0434.svg").
	Title string

	// Mime is the file MIME type.
	Mime string

	// User is the uploading user.
	User string

	// UserID is the uploading user's numeric id.
	UserID int64

	// URL is the direct file URL.
	URL string

	// DescriptionURL is the file description page URL.
	DescriptionURL string

	// ObjectName is the structured object name from extmetadata.
	ObjectName string

	// LicenseShortName is the short license name from extmetadata.
	LicenseShortName string

	// LicenseURL is the license deed URL from extmetadata. May be empty.
	LicenseURL string

	// ImageDescription is the file description from extmetadata.
	ImageDescription string
}

// Symbol converts the page into a SymbolRecord.
// Returns false if the page is not an ISO 7000 SVG icon.
func (p PageRecord) Symbol() (SymbolRecord, bool) {
	if p.Mime != SVGMIMEType {
		return SymbolRecord{}, false
	}
	ref, ok := ParseReferenceID(p.ObjectName)
	if !ok {
		return SymbolRecord{}, false
	}
	rec, err := NewSymbolRecord(ref, SymbolRecord{
		Title:          p.Title,
		User:           p.User,
		UserID:         p.UserID,
		URL:            p.URL,
		LicenseName:    p.LicenseShortName,
		LicenseURL:     p.LicenseURL,
		Description:    p.ImageDescription,
		DescriptionURL: p.DescriptionURL,
	})
	if err != nil {
		return SymbolRecord{}, false
	}
	return rec, true
}
