package mock

import (
	"context"

	"github.com/fwojciec/headlines"
)

var _ headlines.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of headlines.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ headlines.SourceLimiter = (*SourceLimiter)(nil)

// SourceLimiter is a mock implementation of headlines.SourceLimiter.
type SourceLimiter struct {
	WaitFn func(ctx context.Context, source string) error
}

func (l *SourceLimiter) Wait(ctx context.Context, source string) error {
	return l.WaitFn(ctx, source)
}
