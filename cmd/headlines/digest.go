package main

import (
	"fmt"

	"github.com/fwojciec/headlines"
)

// Run executes the digest command.
func (c *DigestCmd) Run(deps *Dependencies) error {
	d, err := deps.Digester.Digest(deps.Ctx, deps.Config.Source, deps.Config.KeywordLimit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", headlines.ErrorMessage(err))
		return err
	}

	if c.Format == "text" {
		return writeText(deps.Stdout, d)
	}
	return writeJSON(deps.Stdout, d)
}
