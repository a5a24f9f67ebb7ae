package digest

import (
	"context"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/headlines"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of sources digested at once when
// Batch.Concurrency is not set.
const DefaultConcurrency = 3

// Batch digests several sources concurrently. Every source gets its own
// independent run; results are reported per source and never merged.
type Batch struct {
	Digester     headlines.Digester
	RateLimiter  headlines.SourceLimiter
	Concurrency  int
	KeywordLimit int
}

// BatchResult is the outcome of digesting one source.
type BatchResult struct {
	Source string            `json:"source"`
	Digest *headlines.Digest `json:"digest,omitempty"`
	Err    error             `json:"-"`
	Error  string            `json:"error,omitempty"`
}

// Run digests every distinct source and returns one result per source in
// input order. Repeated sources are digested once. A failing source does
// not stop the others; its error is recorded on its result.
func (b *Batch) Run(ctx context.Context, sources []string) []BatchResult {
	sources = dedupe(sources)

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]BatchResult, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, source := range sources {
		g.Go(func() error {
			results[i] = b.digest(gctx, source)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (b *Batch) digest(ctx context.Context, source string) BatchResult {
	result := BatchResult{Source: source}

	if b.RateLimiter != nil {
		if err := b.RateLimiter.Wait(ctx, source); err != nil {
			return result.fail(err)
		}
	}

	d, err := b.Digester.Digest(ctx, source, b.KeywordLimit)
	if err != nil {
		return result.fail(err)
	}
	result.Digest = d
	return result
}

// fail records err on the result. Application errors report their
// message; anything else reports the raw error text.
func (r BatchResult) fail(err error) BatchResult {
	r.Err = err
	if headlines.ErrorCode(err) == headlines.EINTERNAL {
		r.Error = err.Error()
	} else {
		r.Error = headlines.ErrorMessage(err)
	}
	return r
}

// dedupe removes repeated sources, keeping the first occurrence. A Bloom
// filter false positive may drop a distinct source; the rate is kept at 0.1%.
func dedupe(sources []string) []string {
	seen := bloom.NewWithEstimates(uint(max(len(sources), 1)), 0.001)
	out := make([]string, 0, len(sources))
	for _, s := range sources {
		if seen.TestOrAddString(s) {
			continue
		}
		out = append(out, s)
	}
	return out
}
