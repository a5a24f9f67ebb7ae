// Package digest runs the headlines pipeline: fetch a page, extract and
// normalize its articles, then rank keywords and summarize them.
package digest

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/headlines"
	"github.com/google/uuid"
)

// Ensure Service implements headlines.Digester at compile time.
var _ headlines.Digester = (*Service)(nil)

// Service produces digests of single pages. Each call to Digest is an
// independent run, so a Service may be shared between goroutines as long
// as its Fetcher and Extractor are.
type Service struct {
	Fetcher   headlines.Fetcher
	Extractor headlines.Extractor

	// Now, NewID and MemoryBytes are overridable for tests.
	Now   func() time.Time
	NewID func() string

	// MemoryBytes reports the memory the process holds from the OS.
	MemoryBytes func() uint64
}

// Digest fetches source and returns its articles, the limit most frequent
// keywords and metrics.
// Errors from the fetcher, extractor and ranker are returned unchanged.
// A page whose articles are all filtered out fails with EINVALID.
func (s *Service) Digest(ctx context.Context, source string, limit int) (*headlines.Digest, error) {
	begin := s.now()

	html, err := s.Fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, err
	}

	candidates, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	articles := headlines.NormalizeAll(candidates)

	keywords, err := headlines.RankKeywords(articles, limit)
	if err != nil {
		return nil, err
	}

	return &headlines.Digest{
		Source:   source,
		Articles: articles,
		Keywords: keywords,
		Metrics:  headlines.Summarize(articles),
		Meta: headlines.Meta{
			RunID:         s.newID(),
			GeneratedAt:   s.now().Format(headlines.GeneratedAtLayout),
			ExecutionTime: formatSeconds(s.now().Sub(begin)),
			ContentHash:   ComputeHash(html),
			DocumentBytes: len(html),
			MemoryUsage:   FormatMegabytes(s.memoryBytes()),
		},
	}, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s *Service) memoryBytes() uint64 {
	if s.MemoryBytes != nil {
		return s.MemoryBytes()
	}
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Sys
}

// FormatMegabytes renders b in mebibytes rounded to two decimals without
// trailing zeros, e.g. "2MB" or "12.35MB".
func FormatMegabytes(b uint64) string {
	mb := math.Round(float64(b)/(1<<20)*100) / 100
	return strconv.FormatFloat(mb, 'f', -1, 64) + "MB"
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// formatSeconds renders d in seconds with millisecond precision, e.g. "0.125s".
func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.3fs", d.Seconds())
}
