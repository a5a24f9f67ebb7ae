package mock

import "github.com/fwojciec/headlines"

var _ headlines.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of headlines.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]headlines.Candidate, error)
}

func (e *Extractor) Extract(html string) ([]headlines.Candidate, error) {
	return e.ExtractFn(html)
}
