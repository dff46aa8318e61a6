package driven

// ArtifactStore holds the on-disk SVG artifacts, keyed by reference id.
// Raw artifacts are what the downloader fetched; processed artifacts
// are the canonicalised output.
type ArtifactStore interface {
	// RawExists reports whether a raw artifact is present.
	RawExists(ref string) bool

	// ReadRaw returns the raw artifact bytes.
	// Returns an error wrapping domain.ErrMissingInput if absent.
	ReadRaw(ref string) ([]byte, error)

	// WriteRaw stores a downloaded raw artifact.
	WriteRaw(ref string, data []byte) error

	// ProcessedExists reports whether a processed artifact is present.
	ProcessedExists(ref string) bool

	// WriteProcessed stores a canonicalised artifact.
	WriteProcessed(ref string, data []byte) error

	// ProcessedPath returns the path of a processed artifact relative
	// to the output root, for embedding in the generated library.
	ProcessedPath(ref string) string

	// RawDir returns the absolute raw cache directory, for watchers.
	RawDir() string

	// WriteLibraryFile stores a generated library file (lib.typ,
	// attribution) at the output root.
	WriteLibraryFile(name string, data []byte) error
}
