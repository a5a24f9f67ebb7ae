package headlines

import "context"

// Fetcher retrieves the markup of a page.
type Fetcher interface {
	// Fetch returns the HTML served (or rendered) at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// SourceLimiter paces requests made on behalf of a source.
type SourceLimiter interface {
	// Wait blocks until a request for source may proceed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, source string) error
}
