package driving

import (
	"context"

	"github.com/gauravmm/typst-iso-7000/internal/core/domain"
)

// Cataloguer builds and caches the symbol catalogue.
type Cataloguer interface {
	// Catalogue returns the symbol set, fetching from the remote wiki
	// when the local cache is empty or force is set.
	Catalogue(ctx context.Context, force bool) (domain.SymbolSet, error)
}

// Downloader fetches raw SVG artifacts for a symbol set.
type Downloader interface {
	// DownloadAll fetches the raw artifact for every symbol that does
	// not already have one (or for all symbols when force is set).
	DownloadAll(ctx context.Context, set domain.SymbolSet, force bool) (DownloadStats, error)
}

// Processor runs the canonicalisation pipeline over a symbol set.
type Processor interface {
	// ProcessAll runs the pipeline for every symbol in the set.
	// Per-symbol failures are counted, never propagated.
	ProcessAll(ctx context.Context, set domain.SymbolSet, force bool) (ProcessStats, error)

	// ProcessOne runs the pipeline for a single reference id.
	ProcessOne(ctx context.Context, rec domain.SymbolRecord, force bool) error

	// Status returns a snapshot of batch progress for display.
	Status() ProcessStats
}

// LibraryWriter emits the generated Typst library and attribution from
// a symbol set.
type LibraryWriter interface {
	WriteLibrary(ctx context.Context, set domain.SymbolSet) error
}

// DownloadStats summarises a download batch.
type DownloadStats struct {
	// Fetched is the number of artifacts downloaded.
	Fetched int

	// Skipped is the number of artifacts already present.
	Skipped int

	// Failed is the number of download failures.
	Failed int
}

// ProcessStats summarises a processing batch.
// Partial success is the expected normal outcome.
type ProcessStats struct {
	// RunID identifies the batch run in logs.
	RunID string

	// Processed is the number of symbols canonicalised this run.
	Processed int

	// Skipped counts symbols skipped as already processed or missing
	// their raw input.
	Skipped int

	// Failed counts per-symbol failures.
	Failed int

	// Total is the batch size.
	Total int
}
