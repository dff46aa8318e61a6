package services

import (
	"context"
	"log/slog"

	"github.com/gauravmm/typst-iso-7000/internal/core/domain"
	"github.com/gauravmm/typst-iso-7000/internal/core/ports/driven"
	"github.com/gauravmm/typst-iso-7000/internal/core/ports/driving"
)

// Ensure DownloadService implements the interface.
var _ driving.Downloader = (*DownloadService)(nil)

// DownloadService fetches raw SVG artifacts into the raw cache.
type DownloadService struct {
	fetcher   driven.FileFetcher
	artifacts driven.ArtifactStore
	logger    *slog.Logger
}

// NewDownloadService creates a download service.
func NewDownloadService(fetcher driven.FileFetcher, artifacts driven.ArtifactStore, logger *slog.Logger) *DownloadService {
	return &DownloadService{
		fetcher:   fetcher,
		artifacts: artifacts,
		logger:    logger,
	}
}

// DownloadAll fetches the raw artifact for every symbol in the set.
// Already-present artifacts are skipped unless force is set. A failed
// download is logged and counted; it never aborts the batch.
func (s *DownloadService) DownloadAll(ctx context.Context, set domain.SymbolSet, force bool) (driving.DownloadStats, error) {
	var stats driving.DownloadStats

	for _, ref := range set.Refs() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		rec := set[ref]
		if !force && s.artifacts.RawExists(ref) {
			stats.Skipped++
			continue
		}

		data, err := s.fetcher.Fetch(ctx, rec.URL)
		if err != nil {
			stats.Failed++
			s.logger.Error("download failed", "ref", ref, "url", rec.URL, "error", err)
			continue
		}
		if err := s.artifacts.WriteRaw(ref, data); err != nil {
			stats.Failed++
			s.logger.Error("writing raw artifact failed", "ref", ref, "error", err)
			continue
		}
		stats.Fetched++
		s.logger.Debug("downloaded", "ref", ref, "bytes", len(data))
	}

	s.logger.Info("download complete",
		"fetched", stats.Fetched, "skipped", stats.Skipped, "failed", stats.Failed)
	return stats, nil
}
