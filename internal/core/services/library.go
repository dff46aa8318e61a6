package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/gauravmm/typst-iso-7000/internal/core/domain"
	"github.com/gauravmm/typst-iso-7000/internal/core/ports/driven"
	"github.com/gauravmm/typst-iso-7000/internal/core/ports/driving"
)

// Ensure LibraryService implements the interface.
var _ driving.LibraryWriter = (*LibraryService)(nil)

// libTemplate renders the Typst symbol table. Keys are reference ids,
// values are paths to the processed icons.
var libTemplate = template.Must(template.New("lib.typ").Parse(`// ISO 7000 icon library. Generated; do not edit.
#let iso7000-icons = (
{{- range .}}
  "{{.Ref}}": "{{.Path}}",
{{- end}}
)

#let iso7000(ref, ..args) = image(iso7000-icons.at(ref), ..args)
`))

// attributionTemplate renders the per-icon attribution list required by
// the upstream licenses.
var attributionTemplate = template.Must(template.New("ATTRIBUTION.md").Parse(`# Attribution

Icons sourced from Wikimedia Commons.

| Ref | Title | Author | License |
|-----|-------|--------|---------|
{{- range .}}
| {{.Ref}} | [{{.Title}}]({{.DescriptionURL}}) | {{.User}} | {{if .LicenseURL}}[{{.LicenseName}}]({{.LicenseURL}}){{else}}{{.LicenseName}}{{end}} |
{{- end}}
`))

// LibraryService emits the generated Typst library and attribution
// files for all processed icons.
type LibraryService struct {
	artifacts driven.ArtifactStore
	logger    *slog.Logger
}

// NewLibraryService creates a library writer.
func NewLibraryService(artifacts driven.ArtifactStore, logger *slog.Logger) *LibraryService {
	return &LibraryService{
		artifacts: artifacts,
		logger:    logger,
	}
}

type libEntry struct {
	domain.SymbolRecord
	Path string
}

// WriteLibrary writes lib.typ and ATTRIBUTION.md covering every symbol
// with a processed artifact, in reference-id order.
func (s *LibraryService) WriteLibrary(_ context.Context, set domain.SymbolSet) error {
	var entries []libEntry
	for _, ref := range set.Refs() {
		if !s.artifacts.ProcessedExists(ref) {
			continue
		}
		entries = append(entries, libEntry{
			SymbolRecord: set[ref],
			Path:         s.artifacts.ProcessedPath(ref),
		})
	}

	var lib bytes.Buffer
	if err := libTemplate.Execute(&lib, entries); err != nil {
		return fmt.Errorf("rendering library: %w", err)
	}
	if err := s.artifacts.WriteLibraryFile("lib.typ", lib.Bytes()); err != nil {
		return fmt.Errorf("writing library: %w", err)
	}

	var attr bytes.Buffer
	if err := attributionTemplate.Execute(&attr, entries); err != nil {
		return fmt.Errorf("rendering attribution: %w", err)
	}
	if err := s.artifacts.WriteLibraryFile("ATTRIBUTION.md", attr.Bytes()); err != nil {
		return fmt.Errorf("writing attribution: %w", err)
	}

	s.logger.Info("library written", "icons", len(entries))
	return nil
}
