package mock

import (
	"context"

	"github.com/fwojciec/headlines"
)

var _ headlines.Digester = (*Digester)(nil)

// Digester is a mock implementation of headlines.Digester.
type Digester struct {
	DigestFn func(ctx context.Context, source string, limit int) (*headlines.Digest, error)
}

func (d *Digester) Digest(ctx context.Context, source string, limit int) (*headlines.Digest, error) {
	return d.DigestFn(ctx, source, limit)
}
