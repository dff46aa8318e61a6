package driven

import (
	"context"

	"github.com/gauravmm/typst-iso-7000/internal/core/domain"
)

// MetadataSource retrieves symbol metadata pages from the remote wiki.
// Implementations handle pagination and rate limiting internally.
type MetadataSource interface {
	// Search streams every matching page record.
	// The page channel is closed when retrieval finishes; a terminal
	// failure is delivered on the error channel.
	Search(ctx context.Context) (<-chan domain.PageRecord, <-chan error)
}

// FileFetcher downloads a single file by URL.
type FileFetcher interface {
	// Fetch retrieves the raw bytes at url, honouring the client's
	// rate limit.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
