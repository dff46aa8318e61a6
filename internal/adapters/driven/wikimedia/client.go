package wikimedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/gauravmm/typst-iso-7000/internal/core/domain"
	"github.com/gauravmm/typst-iso-7000/internal/core/ports/driven"
)

const (
	// DefaultEndpoint is the Commons API endpoint.
	DefaultEndpoint = "https://commons.wikimedia.org/w/api.php"

	// DefaultPageSize is the generator=search page size. 500 is the
	// maximum for anonymous clients.
	DefaultPageSize = 500

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// MaxRetries is the maximum number of retries for rate-limited
	// requests.
	MaxRetries = 3

	// searchTerm is the quoted phrase identifying ISO 7000 icon pages.
	searchTerm = `"ISO 7000 - Ref-No"`

	// fileNamespace is the Wikimedia File: namespace.
	fileNamespace = "6"

	userAgent = "typst-iso-7000 (https://github.com/gauravmm/typst-iso-7000)"
)

// Ensure Client implements both driven ports.
var (
	_ driven.MetadataSource = (*Client)(nil)
	_ driven.FileFetcher    = (*Client)(nil)
)

// Config configures a Client. Zero values select defaults.
type Config struct {
	Endpoint  string
	PageSize  int
	RateLimit RateLimitConfig
	Logger    *slog.Logger
}

// Client talks to the Wikimedia Commons API.
type Client struct {
	http     *http.Client
	endpoint string
	pageSize int
	limiter  *RateLimiter
	logger   *slog.Logger
}

// NewClient creates a Commons API client.
func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Client{
		http:     &http.Client{Timeout: DefaultTimeout},
		endpoint: cfg.Endpoint,
		pageSize: cfg.PageSize,
		limiter:  NewRateLimiter(cfg.RateLimit),
		logger:   cfg.Logger,
	}
}

// Search streams every ISO 7000 search result page, following
// gsroffset continuation until the result set is exhausted.
func (c *Client) Search(ctx context.Context) (<-chan domain.PageRecord, <-chan error) {
	records := make(chan domain.PageRecord)
	errs := make(chan error, 1)

	go func() {
		defer close(records)
		defer close(errs)

		offset := 0
		for {
			resp, err := c.queryPage(ctx, offset)
			if err != nil {
				errs <- err
				return
			}

			for _, rec := range flatten(resp) {
				select {
				case <-ctx.Done():
					errs <- ctx.Err()
					return
				case records <- rec:
				}
			}

			if resp.Continue == nil {
				return
			}
			offset = resp.Continue.GsrOffset
			c.logger.Debug("continuing search", "gsroffset", offset)
		}
	}()

	return records, errs
}

// Fetch downloads the raw bytes at url, honouring the shared rate limit.
func (c *Client) Fetch(ctx context.Context, fileURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", fileURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.limiter.RecordRateLimitError(retryAfter(resp))
		return nil, fmt.Errorf("%w: %s", domain.ErrRateLimited, fileURL)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", fileURL, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// queryPage runs one search query at the given offset, retrying after
// rate-limit responses.
func (c *Client) queryPage(ctx context.Context, offset int) (*queryResponse, error) {
	var lastErr error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		resp, err := c.doQuery(ctx, offset)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, fmt.Errorf("query at offset %d: %w", offset, lastErr)
}

func (c *Client) doQuery(ctx context.Context, offset int) (*queryResponse, error) {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("format", "json")
	q.Set("generator", "search")
	q.Set("gsrnamespace", fileNamespace)
	q.Set("gsrsearch", searchTerm)
	q.Set("gsrlimit", strconv.Itoa(c.pageSize))
	q.Set("gsroffset", strconv.Itoa(offset))
	q.Set("prop", "imageinfo")
	q.Set("iiprop", "size|mime|url|user|userid|extmetadata")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.limiter.RecordRateLimitError(retryAfter(resp))
		return nil, fmt.Errorf("%w: search offset %d", domain.ErrRateLimited, offset)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("querying api: status %d", resp.StatusCode)
	}

	var parsed queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("api error %s: %s", parsed.Error.Code, parsed.Error.Info)
	}
	return &parsed, nil
}

// flatten converts a query response into page records in search-index
// order. The pages object is a JSON map, so ordering has to be
// recovered from the index field for deterministic processing.
func flatten(resp *queryResponse) []domain.PageRecord {
	if resp.Query == nil {
		return nil
	}

	pages := make([]page, 0, len(resp.Query.Pages))
	for _, p := range resp.Query.Pages {
		pages = append(pages, p)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Index < pages[j].Index })

	var records []domain.PageRecord
	for _, p := range pages {
		if len(p.ImageInfo) == 0 {
			continue
		}
		info := p.ImageInfo[0]
		records = append(records, domain.PageRecord{
			Title:            p.Title,
			Mime:             info.Mime,
			User:             info.User,
			UserID:           info.UserID,
			URL:              info.URL,
			DescriptionURL:   info.DescriptionURL,
			ObjectName:       info.ExtMetadata.ObjectName.Value,
			LicenseShortName: info.ExtMetadata.LicenseShortName.Value,
			LicenseURL:       info.ExtMetadata.LicenseURL.Value,
			ImageDescription: info.ExtMetadata.ImageDescription.Value,
		})
	}
	return records
}

func retryAfter(resp *http.Response) int {
	sec, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	if err != nil {
		return 0
	}
	return sec
}
