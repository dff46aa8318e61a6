package driven

import (
	"context"
	"time"

	"github.com/gauravmm/typst-iso-7000/internal/core/domain"
)

// SymbolStore persists the symbol catalogue between runs so the remote
// search does not have to be repeated on every invocation.
type SymbolStore interface {
	// ReplaceAll atomically replaces the stored catalogue and records
	// the fetch time.
	ReplaceAll(ctx context.Context, records []domain.SymbolRecord) error

	// List returns all stored records.
	List(ctx context.Context) ([]domain.SymbolRecord, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)

	// LastFetched returns when the catalogue was last replaced.
	// Returns domain.ErrNotFound if no fetch has ever completed.
	LastFetched(ctx context.Context) (time.Time, error)

	// Close releases the underlying resources.
	Close() error
}
