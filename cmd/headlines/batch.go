package main

import (
	"fmt"

	"github.com/fwojciec/headlines"
	"github.com/fwojciec/headlines/digest"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	sources := deps.Config.Sources
	if len(sources) == 0 {
		err := headlines.Errorf(headlines.EINVALID, "no sources given")
		fmt.Fprintf(deps.Stderr, "error: %s\n", headlines.ErrorMessage(err))
		return err
	}

	batch := &digest.Batch{
		Digester:     deps.Digester,
		RateLimiter:  digest.NewHostLimiter(deps.Config.RateLimit),
		Concurrency:  deps.Config.Concurrency,
		KeywordLimit: deps.Config.KeywordLimit,
	}
	results := batch.Run(deps.Ctx, sources)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", r.Source, r.Error)
		}
	}

	if err := writeJSON(deps.Stdout, results); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d sources failed", failed, len(results))
	}
	return nil
}
