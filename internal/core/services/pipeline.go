package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/gauravmm/typst-iso-7000/internal/core/domain"
	"github.com/gauravmm/typst-iso-7000/internal/core/ports/driven"
	"github.com/gauravmm/typst-iso-7000/internal/core/ports/driving"
	"github.com/gauravmm/typst-iso-7000/internal/svg"
)

// Ensure PipelineService implements the interface.
var _ driving.Processor = (*PipelineService)(nil)

// PipelineService is the per-symbol canonicalisation driver:
// load → clean → normalize → serialize, with idempotence and
// force-reprocess policy. No symbol's failure aborts the batch.
type PipelineService struct {
	artifacts driven.ArtifactStore
	logger    *slog.Logger
	size      string

	// Batch progress, polled by the CLI while a run is active.
	mu    sync.RWMutex
	stats driving.ProcessStats
}

// NewPipelineService creates a pipeline driver writing icons at the
// given canonical size. An empty size selects the 10mm default.
func NewPipelineService(artifacts driven.ArtifactStore, logger *slog.Logger, size string) *PipelineService {
	if size == "" {
		size = svg.DefaultCanonicalSize
	}
	return &PipelineService{
		artifacts: artifacts,
		logger:    logger,
		size:      size,
	}
}

// ProcessAll runs the pipeline for every symbol in the set, in
// lexicographic reference-id order. Per-symbol failures are logged with
// the offending reference id and counted; the returned error is non-nil
// only for batch-level interruption (context cancellation).
func (s *PipelineService) ProcessAll(ctx context.Context, set domain.SymbolSet, force bool) (driving.ProcessStats, error) {
	runID := uuid.New().String()
	logger := s.logger.With("run_id", runID)

	s.mu.Lock()
	s.stats = driving.ProcessStats{RunID: runID, Total: len(set)}
	s.mu.Unlock()

	logger.Info("processing batch", "symbols", len(set), "force", force)

	for _, ref := range set.Refs() {
		if err := ctx.Err(); err != nil {
			return s.Status(), err
		}
		s.record(s.processOne(set[ref], force, logger))
	}

	stats := s.Status()
	logger.Info("batch complete",
		"processed", stats.Processed, "skipped", stats.Skipped, "failed", stats.Failed)
	return stats, nil
}

// ProcessOne runs the pipeline for a single symbol, outside of batch
// accounting. Used by the watch mode when a raw artifact changes.
func (s *PipelineService) ProcessOne(_ context.Context, rec domain.SymbolRecord, force bool) error {
	outcome, err := s.processOne(rec, force, s.logger)
	if outcome == outcomeFailed {
		return err
	}
	return nil
}

// Status returns a snapshot of the current batch progress.
func (s *PipelineService) Status() driving.ProcessStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

type outcome int

const (
	outcomeProcessed outcome = iota
	outcomeSkipped
	outcomeFailed
)

func (s *PipelineService) record(o outcome, _ error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch o {
	case outcomeProcessed:
		s.stats.Processed++
	case outcomeSkipped:
		s.stats.Skipped++
	case outcomeFailed:
		s.stats.Failed++
	}
}

// processOne canonicalises a single symbol.
func (s *PipelineService) processOne(rec domain.SymbolRecord, force bool, logger *slog.Logger) (outcome, error) {
	ref := rec.Ref

	// Idempotence: an existing output counts as success.
	if !force && s.artifacts.ProcessedExists(ref) {
		logger.Debug("already processed", "ref", ref)
		return outcomeSkipped, nil
	}

	raw, err := s.artifacts.ReadRaw(ref)
	if errors.Is(err, domain.ErrMissingInput) {
		// The raw artifact was never downloaded. Not an error.
		logger.Info("raw artifact absent, skipping", "ref", ref)
		return outcomeSkipped, nil
	}
	if err != nil {
		logger.Error("reading raw artifact", "ref", ref, "error", err)
		return outcomeFailed, err
	}

	out, err := canonicalise(raw, s.size)
	if err != nil {
		logger.Error("processing failed", "ref", ref, "error", err)
		return outcomeFailed, err
	}

	if err := s.artifacts.WriteProcessed(ref, out); err != nil {
		logger.Error("writing processed artifact", "ref", ref, "error", err)
		return outcomeFailed, err
	}

	logger.Debug("processed", "ref", ref, "bytes", len(out))
	return outcomeProcessed, nil
}

// canonicalise runs the four pipeline stages over raw SVG bytes.
func canonicalise(raw []byte, size string) ([]byte, error) {
	doc, err := svg.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	svg.Clean(doc)

	if err := svg.NormalizeSize(doc, size); err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}

	out, err := svg.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("serialize: %w", err)
	}
	return out, nil
}
