package digest

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/headlines"
	"golang.org/x/time/rate"
)

var _ headlines.SourceLimiter = (*HostLimiter)(nil)

// HostLimiter spaces out runs against the same site. Sources share a
// token bucket when HostKey maps them to the same key, so several sections
// of one front page are paced together while other sites proceed at once.
type HostLimiter struct {
	limit rate.Limit

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

// NewHostLimiter returns a limiter allowing rps runs per second per host
// with no bursting. A non-positive rps never waits.
func NewHostLimiter(rps float64) *HostLimiter {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &HostLimiter{
		limit: limit,
		hosts: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until source's host has a free token or ctx is done.
func (l *HostLimiter) Wait(ctx context.Context, source string) error {
	return l.bucket(HostKey(source)).Wait(ctx)
}

// Hosts returns the number of distinct hosts seen so far.
func (l *HostLimiter) Hosts() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.hosts)
}

func (l *HostLimiter) bucket(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.hosts[key]
	if !ok {
		b = rate.NewLimiter(l.limit, 1)
		l.hosts[key] = b
	}
	return b
}

// HostKey returns the pacing key of source: its lower-cased host without
// port or a leading "www.". A source without a host is its own key.
func HostKey(source string) string {
	u, err := url.Parse(strings.TrimSpace(source))
	if err != nil || u.Hostname() == "" {
		return source
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}
