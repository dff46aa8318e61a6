package wikimedia

// API response types for action=query with generator=search and
// prop=imageinfo. Only the fields the catalogue consumes are mapped.

type queryResponse struct {
	Continue *continueToken `json:"continue"`
	Query    *queryResult   `json:"query"`
	Error    *apiError      `json:"error"`
}

type continueToken struct {
	GsrOffset int    `json:"gsroffset"`
	Continue  string `json:"continue"`
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

type queryResult struct {
	// Pages is keyed by page id; ordering comes from the page index.
	Pages map[string]page `json:"pages"`
}

type page struct {
	PageID    int64       `json:"pageid"`
	Index     int         `json:"index"`
	Title     string      `json:"title"`
	ImageInfo []imageInfo `json:"imageinfo"`
}

type imageInfo struct {
	Mime           string      `json:"mime"`
	User           string      `json:"user"`
	UserID         int64       `json:"userid"`
	URL            string      `json:"url"`
	DescriptionURL string      `json:"descriptionurl"`
	ExtMetadata    extMetadata `json:"extmetadata"`
}

// extMetadata values are wrapped objects: {"value": "...", "source": ...}.
type extMetadata struct {
	ObjectName       metaValue `json:"ObjectName"`
	LicenseShortName metaValue `json:"LicenseShortName"`
	LicenseURL       metaValue `json:"LicenseUrl"`
	ImageDescription metaValue `json:"ImageDescription"`
}

type metaValue struct {
	Value string `json:"value"`
}
