// Package fs stores raw and processed SVG artifacts on disk, keyed by
// reference id. Raw artifacts live under <root>/raw and processed ones
// under <root>/processed; generated library files sit at the root.
package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gauravmm/typst-iso-7000/internal/core/domain"
	"github.com/gauravmm/typst-iso-7000/internal/core/ports/driven"
)

const (
	rawDirName       = "raw"
	processedDirName = "processed"
)

// Ensure ArtifactStore implements the interface.
var _ driven.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore is the on-disk artifact store.
type ArtifactStore struct {
	root string
}

// NewArtifactStore creates the store rooted at dir, creating the raw
// and processed directories if needed.
func NewArtifactStore(dir string) (*ArtifactStore, error) {
	for _, sub := range []string{rawDirName, processedDirName} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0755); err != nil {
			return nil, fmt.Errorf("creating %s directory: %w", sub, err)
		}
	}
	return &ArtifactStore{root: dir}, nil
}

// RawDir returns the absolute raw cache directory.
func (s *ArtifactStore) RawDir() string {
	return filepath.Join(s.root, rawDirName)
}

// RawExists reports whether a raw artifact is present.
func (s *ArtifactStore) RawExists(ref string) bool {
	_, err := os.Stat(s.rawPath(ref))
	return err == nil
}

// ReadRaw returns the raw artifact bytes for ref.
func (s *ArtifactStore) ReadRaw(ref string) ([]byte, error) {
	data, err := os.ReadFile(s.rawPath(ref))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s.svg", domain.ErrMissingInput, ref)
	}
	if err != nil {
		return nil, fmt.Errorf("reading raw artifact: %w", err)
	}
	return data, nil
}

// WriteRaw stores a downloaded raw artifact.
func (s *ArtifactStore) WriteRaw(ref string, data []byte) error {
	return writeFile(s.rawPath(ref), data)
}

// ProcessedExists reports whether a processed artifact is present.
func (s *ArtifactStore) ProcessedExists(ref string) bool {
	_, err := os.Stat(filepath.Join(s.root, s.ProcessedPath(ref)))
	return err == nil
}

// WriteProcessed stores a canonicalised artifact.
func (s *ArtifactStore) WriteProcessed(ref string, data []byte) error {
	return writeFile(filepath.Join(s.root, s.ProcessedPath(ref)), data)
}

// ProcessedPath returns the output path relative to the store root, as
// referenced from the generated library.
func (s *ArtifactStore) ProcessedPath(ref string) string {
	return filepath.ToSlash(filepath.Join(processedDirName, ref+".svg"))
}

// WriteLibraryFile stores a generated library file at the store root.
func (s *ArtifactStore) WriteLibraryFile(name string, data []byte) error {
	return writeFile(filepath.Join(s.root, name), data)
}

func (s *ArtifactStore) rawPath(ref string) string {
	return filepath.Join(s.root, rawDirName, ref+".svg")
}

// writeFile writes atomically enough for a single-writer batch: a
// temp file in the target directory renamed into place.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming into place: %w", err)
	}
	return nil
}
