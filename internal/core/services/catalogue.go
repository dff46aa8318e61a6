package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gauravmm/typst-iso-7000/internal/core/domain"
	"github.com/gauravmm/typst-iso-7000/internal/core/ports/driven"
	"github.com/gauravmm/typst-iso-7000/internal/core/ports/driving"
)

// Ensure CatalogueService implements the interface.
var _ driving.Cataloguer = (*CatalogueService)(nil)

// CatalogueService builds the symbol catalogue from the remote wiki and
// caches it in the symbol store.
type CatalogueService struct {
	source driven.MetadataSource
	store  driven.SymbolStore
	logger *slog.Logger
}

// NewCatalogueService creates a catalogue service.
func NewCatalogueService(source driven.MetadataSource, store driven.SymbolStore, logger *slog.Logger) *CatalogueService {
	return &CatalogueService{
		source: source,
		store:  store,
		logger: logger,
	}
}

// Catalogue returns the symbol set. The cached catalogue is used when
// present; force bypasses the cache and repeats the remote search.
func (s *CatalogueService) Catalogue(ctx context.Context, force bool) (domain.SymbolSet, error) {
	if !force {
		if set, ok := s.cached(ctx); ok {
			return set, nil
		}
	}

	pages, errs := s.source.Search(ctx)

	set := make(domain.SymbolSet)
	skipped := 0
	for page := range pages {
		rec, ok := page.Symbol()
		if !ok {
			skipped++
			s.logger.Debug("skipping non-symbol page", "title", page.Title, "mime", page.Mime, "object_name", page.ObjectName)
			continue
		}
		if prev := set.Insert(rec); prev != nil {
			// Last-write-wins on conflicting duplicates.
			s.logger.Warn("duplicate reference id, later record wins",
				"ref", rec.Ref, "kept_title", rec.Title, "dropped_title", prev.Title)
		}
	}
	if err := <-errs; err != nil {
		return nil, fmt.Errorf("searching metadata: %w", err)
	}

	s.logger.Info("catalogue built", "symbols", len(set), "skipped_pages", skipped)

	records := make([]domain.SymbolRecord, 0, len(set))
	for _, ref := range set.Refs() {
		records = append(records, set[ref])
	}
	if err := s.store.ReplaceAll(ctx, records); err != nil {
		return nil, fmt.Errorf("caching catalogue: %w", err)
	}

	return set, nil
}

// cached loads the catalogue from the store. Returns false when the
// store is empty or unreadable, in which case a fresh search runs.
func (s *CatalogueService) cached(ctx context.Context) (domain.SymbolSet, bool) {
	records, err := s.store.List(ctx)
	if err != nil || len(records) == 0 {
		return nil, false
	}

	set := make(domain.SymbolSet, len(records))
	for _, rec := range records {
		set.Insert(rec)
	}

	if when, err := s.store.LastFetched(ctx); err == nil {
		s.logger.Debug("using cached catalogue", "symbols", len(set), "fetched_at", when)
	}
	return set, true
}
