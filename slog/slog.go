// Package slog wraps headlines services with structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/headlines"
)

// Ensure LoggingFetcher implements headlines.Fetcher.
var _ headlines.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   headlines.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next headlines.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// Ensure LoggingExtractor implements headlines.Extractor.
var _ headlines.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   headlines.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next headlines.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs how many blocks matched.
func (e *LoggingExtractor) Extract(html string) (candidates []headlines.Candidate, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"bytes", len(html),
			"candidates", len(candidates),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}

// Ensure LoggingDigester implements headlines.Digester.
var _ headlines.Digester = (*LoggingDigester)(nil)

// LoggingDigester wraps a Digester with logging.
type LoggingDigester struct {
	next   headlines.Digester
	logger *slog.Logger
}

// NewLoggingDigester creates a new LoggingDigester.
func NewLoggingDigester(next headlines.Digester, logger *slog.Logger) *LoggingDigester {
	return &LoggingDigester{next: next, logger: logger}
}

// Digest delegates to the wrapped digester and logs the result size.
// Failures are logged at error level with their application code.
func (d *LoggingDigester) Digest(ctx context.Context, source string, limit int) (digest *headlines.Digest, err error) {
	defer func(begin time.Time) {
		if err != nil {
			d.logger.Error("digest",
				"source", source,
				"limit", limit,
				"code", headlines.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		d.logger.Info("digest",
			"source", source,
			"limit", limit,
			"articles", len(digest.Articles),
			"keywords", len(digest.Keywords),
			"category", digest.Metrics.MostCommonCategory,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return d.next.Digest(ctx, source, limit)
}
