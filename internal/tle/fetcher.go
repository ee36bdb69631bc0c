package tle

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/orbitops-data/orbitops/internal/httputil"
	"github.com/orbitops-data/orbitops/internal/monitoring"
	"github.com/orbitops-data/orbitops/internal/timeutil"
)

const defaultUserAgent = "orbitops/1.0 (conjunction screening service)"

// FetchError tags a failed fetch with its source and attempt count so
// callers can report failures per source.
type FetchError struct {
	Source   string
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("source %q failed after %d attempts: %v", e.Source, e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// FetchResult is the outcome of fetching one source.
type FetchResult struct {
	SourceName string
	Elements   []TLE
	FetchedAt  time.Time
	Bytes      int
}

// FetcherStats counts fetch outcomes across the fetcher's lifetime.
type FetcherStats struct {
	TotalFetches      int
	SuccessfulFetches int
	FailedFetches     int
	ElementsFetched   int
	LastSuccess       time.Time
}

// Fetcher retrieves element sets from remote catalog sources with bounded
// retries. Safe for concurrent use.
type Fetcher struct {
	client     httputil.HTTPClient
	clock      timeutil.Clock
	userAgent  string
	timeout    time.Duration
	maxRetries int

	mu      sync.Mutex
	sources []Source
	stats   FetcherStats
}

// FetcherOption customises a Fetcher.
type FetcherOption func(*Fetcher)

// WithHTTPClient injects the HTTP client (tests use httputil.MockHTTPClient).
func WithHTTPClient(c httputil.HTTPClient) FetcherOption {
	return func(f *Fetcher) { f.client = c }
}

// WithClock injects the clock used for fetch timestamps.
func WithClock(c timeutil.Clock) FetcherOption {
	return func(f *Fetcher) { f.clock = c }
}

// WithUserAgent sets the User-Agent header sent to catalog sources.
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) { f.userAgent = ua }
}

// WithMaxRetries sets the per-source retry budget.
func WithMaxRetries(n int) FetcherOption {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxRetries = n
		}
	}
}

// NewFetcher creates a Fetcher over the given sources.
func NewFetcher(sources []Source, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		clock:      timeutil.RealClock{},
		userAgent:  defaultUserAgent,
		timeout:    30 * time.Second,
		maxRetries: 3,
		sources:    append([]Source(nil), sources...),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = httputil.NewStandardClient(&http.Client{Timeout: f.timeout})
	}
	return f
}

// Sources returns a copy of the configured source list.
func (f *Fetcher) Sources() []Source {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Source(nil), f.sources...)
}

// AddSource appends a source to the fetch set.
func (f *Fetcher) AddSource(s Source) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sources = append(f.sources, s)
}

// Stats returns a snapshot of fetch counters.
func (f *Fetcher) Stats() FetcherStats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats
}

// Fetch retrieves and parses one source, retrying on empty or error
// responses up to the configured retry budget.
func (f *Fetcher) Fetch(ctx context.Context, src Source) (FetchResult, error) {
	var lastErr error
	for attempt := 1; attempt <= f.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return FetchResult{}, &FetchError{Source: src.Name, Attempts: attempt - 1, Err: err}
		}

		body, err := f.fetchOnce(ctx, src)
		if err != nil {
			lastErr = err
			monitoring.Logf("tle: fetch %q attempt %d/%d: %v", src.Name, attempt, f.maxRetries, err)
			continue
		}

		elements, err := Parse(bytes.NewReader(body))
		if err != nil {
			lastErr = err
			continue
		}
		if len(elements) == 0 {
			lastErr = fmt.Errorf("no parsable element blocks in %d bytes", len(body))
			continue
		}

		f.mu.Lock()
		f.stats.TotalFetches++
		f.stats.SuccessfulFetches++
		f.stats.ElementsFetched += len(elements)
		f.stats.LastSuccess = f.clock.Now()
		f.mu.Unlock()

		return FetchResult{
			SourceName: src.Name,
			Elements:   elements,
			FetchedAt:  f.clock.Now(),
			Bytes:      len(body),
		}, nil
	}

	f.mu.Lock()
	f.stats.TotalFetches++
	f.stats.FailedFetches++
	f.mu.Unlock()

	return FetchResult{}, &FetchError{Source: src.Name, Attempts: f.maxRetries, Err: lastErr}
}

func (f *Fetcher) fetchOnce(ctx context.Context, src Source) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching elements: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("empty response body")
	}
	return body, nil
}

// FetchAll fetches every enabled source, returning the merged element set
// and per-source errors for sources that failed. The merge keys by catalog
// number with the later epoch winning.
func (f *Fetcher) FetchAll(ctx context.Context) ([]TLE, []error) {
	var merged []TLE
	var errs []error
	for _, src := range f.Sources() {
		if !src.Enabled {
			continue
		}
		res, err := f.Fetch(ctx, src)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		merged = Merge(merged, res.Elements)
	}
	return merged, errs
}
